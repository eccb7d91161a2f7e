package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiperent/internal/model"
)

func TestFavoriteLookupAndDelete(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFavoriteStore(db)
	user := seedUser(t, db, "fav@example.com")
	seedApartment(t, db, 100, "Unit A", "Brea, CA")

	got, err := favorites.GetByUserAndApartment(user.ID, 100)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, favorites.Create(&model.Favorite{UserID: user.ID, ApartmentID: 100}))

	got, err = favorites.GetByUserAndApartment(user.ID, 100)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(100), got.ApartmentID)

	require.NoError(t, favorites.DeleteByUserAndApartment(user.ID, 100))
	got, err = favorites.GetByUserAndApartment(user.ID, 100)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is not an error.
	require.NoError(t, favorites.DeleteByUserAndApartment(user.ID, 100))
}

func TestListWithApartmentsDedupsByTitleAndLocation(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFavoriteStore(db)
	user := seedUser(t, db, "dedup@example.com")

	// Two distinct listings sharing a title and location collapse to one
	// row; that is the shipped dedup key.
	seedApartment(t, db, 1, "Sunset Lofts", "Brea, CA")
	seedApartment(t, db, 2, "Sunset Lofts", "Brea, CA")
	seedApartment(t, db, 3, "Hilltop Flats", "Fullerton, CA")

	for _, aptID := range []int64{1, 2, 3} {
		require.NoError(t, db.Create(&model.Favorite{
			UserID:      user.ID,
			ApartmentID: aptID,
			CreatedAt:   time.Now().Add(time.Duration(aptID) * time.Second),
		}).Error)
	}

	listings, err := favorites.ListWithApartments(user.ID)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	titles := []string{listings[0].Title, listings[1].Title}
	assert.Contains(t, titles, "Sunset Lofts")
	assert.Contains(t, titles, "Hilltop Flats")

	// Ordered by favorite creation time, newest first.
	assert.True(t, !listings[0].CreatedAt.Before(listings[1].CreatedAt))
}

func TestListWithApartmentsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFavoriteStore(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	seedApartment(t, db, 10, "Unit B", "Anaheim, CA")

	require.NoError(t, favorites.Create(&model.Favorite{UserID: alice.ID, ApartmentID: 10}))

	got, err := favorites.ListWithApartments(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
