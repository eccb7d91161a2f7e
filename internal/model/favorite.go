package model

import "time"

// Favorite links a user to a saved apartment. Uniqueness per
// (user_id, apartment_id) is checked in the store before insert, not
// enforced by the schema.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ApartmentID int64     `gorm:"index;not null" json:"apartment_id"`
}
