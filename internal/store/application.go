package store

import (
	"errors"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

// ApplicationStore reads and writes submitted rental applications.
type ApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// GetByUserAndApartment returns the application for the pair, or nil when
// the user has not applied.
func (s *ApplicationStore) GetByUserAndApartment(userID uint, apartmentID int64) (*model.Application, error) {
	var app model.Application
	err := s.db.Where("user_id = ? AND apartment_id = ?", userID, apartmentID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationStore) Create(app *model.Application) error {
	return s.db.Create(app).Error
}
