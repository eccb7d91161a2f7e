package store

import (
	"errors"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore reads and writes renter profiles (one per user).
type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// GetByUserID returns the user's profile, or ErrProfileNotFound.
func (s *ProfileStore) GetByUserID(userID uint) (*model.Profile, error) {
	var p model.Profile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts the profile if the user has none yet, otherwise replaces
// every field of the existing row.
func (s *ProfileStore) Upsert(p *model.Profile) (*model.Profile, error) {
	var existing model.Profile
	err := s.db.Where("user_id = ?", p.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(p).Error; err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	existing.FullName = p.FullName
	existing.PhoneNumber = p.PhoneNumber
	existing.DateOfBirth = p.DateOfBirth
	existing.CurrentAddress = p.CurrentAddress
	existing.Bio = p.Bio
	existing.Occupation = p.Occupation
	existing.MonthlyIncome = p.MonthlyIncome
	existing.PreferredLocations = p.PreferredLocations
	existing.MaxBudget = p.MaxBudget
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
