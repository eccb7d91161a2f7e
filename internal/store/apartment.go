package store

import (
	"errors"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

var ErrApartmentNotFound = errors.New("apartment not found")

// ApartmentStore is the local listing catalog, populated lazily.
type ApartmentStore struct {
	db *gorm.DB
}

func NewApartmentStore(db *gorm.DB) *ApartmentStore {
	return &ApartmentStore{db: db}
}

// GetByID returns the cached apartment, or ErrApartmentNotFound.
func (s *ApartmentStore) GetByID(id int64) (*model.Apartment, error) {
	var apt model.Apartment
	if err := s.db.First(&apt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}
	return &apt, nil
}

// Exists reports whether the apartment is already cached locally.
func (s *ApartmentStore) Exists(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Apartment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure inserts the apartment if it is not in the catalog yet. Existing
// rows are left untouched.
func (s *ApartmentStore) Ensure(apt *model.Apartment) error {
	exists, err := s.Exists(apt.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.db.Create(apt).Error
}
