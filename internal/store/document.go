package store

import (
	"errors"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore reads and writes uploaded document metadata.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Create(doc *model.Document) error {
	return s.db.Create(doc).Error
}

// ListByUser returns all of a user's documents, newest first.
func (s *DocumentStore) ListByUser(userID uint) ([]model.Document, error) {
	var docs []model.Document
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// ListVerified returns the user's documents with status verified.
func (s *DocumentStore) ListVerified(userID uint) ([]model.Document, error) {
	var docs []model.Document
	if err := s.db.Where("user_id = ? AND status = ?", userID, model.DocumentStatusVerified).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByIDAndUser returns the document only if it belongs to the user.
func (s *DocumentStore) GetByIDAndUser(id, userID uint) (*model.Document, error) {
	var doc model.Document
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentStore) Delete(id, userID uint) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Document{}).Error
}
