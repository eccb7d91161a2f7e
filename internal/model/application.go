package model

import "time"

// Application states. Pending is terminal for now; approval flows are not
// implemented.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Application is a submitted rental application. Documents holds the ids of
// the verified documents captured at submission time, stored JSON-encoded.
type Application struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"-"`
	UserID               uint      `gorm:"index;not null" json:"user_id"`
	ApartmentID          int64     `gorm:"index;not null" json:"apartment_id"`
	Documents            []uint    `gorm:"serializer:json" json:"documents"`
	PropertyManagerEmail string    `gorm:"size:255" json:"property_manager_email"`
	Status               string    `gorm:"size:32;not null;default:pending" json:"status"`
}

func (Application) TableName() string { return "apartment_applications" }
