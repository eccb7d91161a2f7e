package model

import "time"

// Apartment is a locally cached listing. The primary key is the external
// listing id, so auto increment is disabled; rows appear the first time a
// user favorites or applies to a listing.
type Apartment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
	Title      string    `gorm:"size:255" json:"title"`
	Price      float64   `json:"price"`
	Location   string    `gorm:"size:255" json:"location"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  float64   `json:"bathrooms"`
	SquareFeet int       `json:"square_feet"`
	ImageURL   string    `gorm:"size:1024" json:"image_url"`
}
