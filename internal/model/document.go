package model

import "time"

// Document verification states. Uploads are marked verified immediately;
// there is no review step yet.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
)

// Document is an uploaded verification file belonging to a user.
type Document struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	DocumentType string    `gorm:"size:64" json:"document_type"`
	FilePath     string    `gorm:"size:512;not null" json:"file_path"`
	OriginalName string    `gorm:"size:255" json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `gorm:"size:128" json:"mime_type"`
	Status       string    `gorm:"size:32;not null;default:pending" json:"status"`
}

func (Document) TableName() string { return "user_documents" }
