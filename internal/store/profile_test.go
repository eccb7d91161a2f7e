package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiperent/internal/model"
)

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileStore(db)
	user := seedUser(t, db, "profile@example.com")

	_, err := profiles.GetByUserID(user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	created, err := profiles.Upsert(&model.Profile{
		UserID:             user.ID,
		FullName:           "Test User",
		MonthlyIncome:      4200,
		PreferredLocations: []string{"Brea", "Fullerton"},
		MaxBudget:          2000,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := profiles.Upsert(&model.Profile{
		UserID:    user.ID,
		FullName:  "Renamed User",
		MaxBudget: 2500,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "upsert must not create a second row")
	assert.Equal(t, "Renamed User", updated.FullName)
	assert.Equal(t, 2500.0, updated.MaxBudget)
	assert.Zero(t, updated.MonthlyIncome, "all fields are replaced on update")

	var count int64
	require.NoError(t, db.Model(&model.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApartmentEnsureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	apartments := NewApartmentStore(db)

	_, err := apartments.GetByID(555)
	assert.ErrorIs(t, err, ErrApartmentNotFound)

	require.NoError(t, apartments.Ensure(&model.Apartment{ID: 555, Title: "First Title"}))
	require.NoError(t, apartments.Ensure(&model.Apartment{ID: 555, Title: "Second Title"}))

	apt, err := apartments.GetByID(555)
	require.NoError(t, err)
	assert.Equal(t, "First Title", apt.Title, "existing rows are left untouched")
}

func TestDocumentStoreVerifiedFilter(t *testing.T) {
	db := newTestDB(t)
	documents := NewDocumentStore(db)
	user := seedUser(t, db, "docs@example.com")

	require.NoError(t, documents.Create(&model.Document{UserID: user.ID, FilePath: "a.pdf", Status: model.DocumentStatusVerified}))
	require.NoError(t, documents.Create(&model.Document{UserID: user.ID, FilePath: "b.pdf", Status: model.DocumentStatusPending}))

	verified, err := documents.ListVerified(user.ID)
	require.NoError(t, err)
	require.Len(t, verified, 1)
	assert.Equal(t, "a.pdf", verified[0].FilePath)

	all, err := documents.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = documents.GetByIDAndUser(verified[0].ID, user.ID+1)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
