package store

import (
	"errors"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore reads and writes account rows.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail returns the user with the given email, or ErrUserNotFound.
func (s *UserStore) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether a user with the email is already registered.
func (s *UserStore) EmailExists(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *UserStore) Create(user *model.User) error {
	return s.db.Create(user).Error
}
