package listings

import (
	"encoding/json"

	"swiperent/internal/model"
)

// Property is the raw listing shape the search API returns and the
// frontend sends back when saving a favorite. IDs arrive as numbers or
// strings depending on the upstream field, hence json.Number.
type Property struct {
	ID           json.Number `json:"id"`
	PropertyID   json.Number `json:"property_id"`
	ListPriceMin float64     `json:"list_price_min"`
	Location     struct {
		Address struct {
			Line      string `json:"line"`
			City      string `json:"city"`
			StateCode string `json:"state_code"`
		} `json:"address"`
	} `json:"location"`
	Description struct {
		BedsMin  float64 `json:"beds_min"`
		BathsMin float64 `json:"baths_min"`
		SqftMin  float64 `json:"sqft_min"`
	} `json:"description"`
	PrimaryPhoto struct {
		Href string `json:"href"`
	} `json:"primary_photo"`
}

// ApartmentID resolves the listing id, preferring property_id over id.
// Zero means no usable id was present.
func (p *Property) ApartmentID() int64 {
	if id, err := p.PropertyID.Int64(); err == nil && id != 0 {
		return id
	}
	if id, err := p.ID.Int64(); err == nil && id != 0 {
		return id
	}
	return 0
}

// ToApartment maps the payload onto a catalog row. Missing optional fields
// default to empty strings and zeroes; mapping never fails.
func (p *Property) ToApartment() *model.Apartment {
	location := ""
	if p.Location.Address.City != "" || p.Location.Address.StateCode != "" {
		location = p.Location.Address.City + ", " + p.Location.Address.StateCode
	}
	return &model.Apartment{
		ID:         p.ApartmentID(),
		Title:      p.Location.Address.Line,
		Price:      p.ListPriceMin,
		Location:   location,
		Bedrooms:   int(p.Description.BedsMin),
		Bathrooms:  p.Description.BathsMin,
		SquareFeet: int(p.Description.SqftMin),
		ImageURL:   p.PrimaryPhoto.Href,
	}
}
