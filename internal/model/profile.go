package model

import "time"

// Profile is the renter profile (one-to-one with User, upserted as a whole).
type Profile struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName           string    `gorm:"size:255" json:"full_name"`
	PhoneNumber        string    `gorm:"size:64" json:"phone_number"`
	DateOfBirth        string    `gorm:"size:32" json:"date_of_birth"`
	CurrentAddress     string    `gorm:"size:512" json:"current_address"`
	Bio                string    `gorm:"size:2048" json:"bio"`
	Occupation         string    `gorm:"size:255" json:"occupation"`
	MonthlyIncome      float64   `json:"monthly_income"`
	PreferredLocations []string  `gorm:"serializer:json" json:"preferred_locations"`
	MaxBudget          float64   `json:"max_budget"`
}

func (Profile) TableName() string { return "user_profiles" }

// FormattedProfile is the camelCase shape the frontend consumes.
type FormattedProfile struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"userId"`
	FullName           string    `json:"fullName"`
	PhoneNumber        string    `json:"phoneNumber"`
	DateOfBirth        string    `json:"dateOfBirth"`
	CurrentAddress     string    `json:"currentAddress"`
	Bio                string    `json:"bio"`
	Occupation         string    `json:"occupation"`
	MonthlyIncome      float64   `json:"monthlyIncome"`
	PreferredLocations []string  `json:"preferredLocations"`
	MaxBudget          float64   `json:"maxBudget"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Formatted converts the stored row to the response shape.
func (p *Profile) Formatted() FormattedProfile {
	locs := p.PreferredLocations
	if locs == nil {
		locs = []string{}
	}
	return FormattedProfile{
		ID:                 p.ID,
		UserID:             p.UserID,
		FullName:           p.FullName,
		PhoneNumber:        p.PhoneNumber,
		DateOfBirth:        p.DateOfBirth,
		CurrentAddress:     p.CurrentAddress,
		Bio:                p.Bio,
		Occupation:         p.Occupation,
		MonthlyIncome:      p.MonthlyIncome,
		PreferredLocations: locs,
		MaxBudget:          p.MaxBudget,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
