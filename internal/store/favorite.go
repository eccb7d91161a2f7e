package store

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"swiperent/internal/model"
)

// FavoriteStore reads and writes saved-listing associations.
type FavoriteStore struct {
	db *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// GetByUserAndApartment returns the favorite for the pair, or nil when
// none exists.
func (s *FavoriteStore) GetByUserAndApartment(userID uint, apartmentID int64) (*model.Favorite, error) {
	var fav model.Favorite
	err := s.db.Where("user_id = ? AND apartment_id = ?", userID, apartmentID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *FavoriteStore) Create(fav *model.Favorite) error {
	return s.db.Create(fav).Error
}

// DeleteByUserAndApartment removes the favorite unconditionally; deleting
// a favorite that does not exist is not an error.
func (s *FavoriteStore) DeleteByUserAndApartment(userID uint, apartmentID int64) error {
	return s.db.Where("apartment_id = ? AND user_id = ?", apartmentID, userID).Delete(&model.Favorite{}).Error
}

// FavoriteListing is a saved apartment with its favorite metadata, shaped
// for the frontend.
type FavoriteListing struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Location   string    `json:"location"`
	Beds       int       `json:"beds"`
	Baths      float64   `json:"baths"`
	Size       int       `json:"size"`
	ImageURL   string    `json:"imageUrl"`
	FavoriteID uint      `json:"favorite_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type favoriteRow struct {
	ID          int64
	Title       string
	Price       float64
	Location    string
	Bedrooms    int
	Bathrooms   float64
	SquareFeet  int
	ImageURL    string
	FavoriteID  uint
	FavoritedAt time.Time
}

// ListWithApartments joins favorites with the catalog, keeping one row per
// (title, location) pair — the most recently favorited one — ordered by
// favorite creation time descending. The dedup key can collapse distinct
// listings that share a title and location; that matches the shipped
// behavior and stays as is.
func (s *FavoriteStore) ListWithApartments(userID uint) ([]FavoriteListing, error) {
	var rows []favoriteRow
	err := s.db.Table("apartments").
		Select("apartments.id, apartments.title, apartments.price, apartments.location, apartments.bedrooms, apartments.bathrooms, apartments.square_feet, apartments.image_url, favorites.id AS favorite_id, favorites.created_at AS favorited_at").
		Joins("INNER JOIN favorites ON apartments.id = favorites.apartment_id").
		Where("favorites.user_id = ?", userID).
		Order("apartments.title, apartments.location, favorites.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	type dedupKey struct{ title, location string }
	seen := make(map[dedupKey]bool)
	listings := make([]FavoriteListing, 0, len(rows))
	for _, r := range rows {
		key := dedupKey{r.Title, r.Location}
		if seen[key] {
			continue
		}
		seen[key] = true
		listings = append(listings, FavoriteListing{
			ID:         r.ID,
			Title:      r.Title,
			Price:      r.Price,
			Location:   r.Location,
			Beds:       r.Bedrooms,
			Baths:      r.Bathrooms,
			Size:       r.SquareFeet,
			ImageURL:   r.ImageURL,
			FavoriteID: r.FavoriteID,
			CreatedAt:  r.FavoritedAt,
		})
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}
