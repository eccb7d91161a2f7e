package workflow

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"swiperent/internal/model"
	"swiperent/internal/store"
)

type fixture struct {
	db   *gorm.DB
	flow *ApplicationWorkflow
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Document{},
		&model.Apartment{}, &model.Favorite{}, &model.Application{},
	))

	flow := NewApplicationWorkflow(
		store.NewApplicationStore(db),
		store.NewApartmentStore(db),
		store.NewProfileStore(db),
		store.NewDocumentStore(db),
		nil,
		zap.NewNop(),
	)
	return &fixture{db: db, flow: flow}
}

func (f *fixture) seedUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{Username: "testuser", Email: uuid.NewString() + "@example.com", PasswordHash: []byte("x")}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) seedApartment(t *testing.T, id int64) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Apartment{ID: id, Title: "Unit", Location: "Brea, CA"}).Error)
}

func (f *fixture) seedProfile(t *testing.T, userID uint) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Profile{UserID: userID, FullName: "Test User"}).Error)
}

func (f *fixture) seedVerifiedDocument(t *testing.T, userID uint) *model.Document {
	t.Helper()
	doc := &model.Document{UserID: userID, FilePath: "doc.pdf", Status: model.DocumentStatusVerified}
	require.NoError(t, f.db.Create(doc).Error)
	return doc
}

func TestSubmitHappyPath(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)
	f.seedApartment(t, 12345)
	f.seedProfile(t, user.ID)
	doc := f.seedVerifiedDocument(t, user.ID)

	app, err := f.flow.Submit(user.ID, 12345, "manager@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
	assert.Equal(t, []uint{doc.ID}, app.Documents)
	assert.Equal(t, "manager@example.com", app.PropertyManagerEmail)
	assert.NotZero(t, app.ID)
}

func TestSubmitDuplicateReturnsExisting(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)
	f.seedApartment(t, 12345)
	f.seedProfile(t, user.ID)
	f.seedVerifiedDocument(t, user.ID)

	first, err := f.flow.Submit(user.ID, 12345, "manager@example.com")
	require.NoError(t, err)

	_, err = f.flow.Submit(user.ID, 12345, "manager@example.com")
	var dup *DuplicateApplicationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.ID, dup.Existing.ID)

	var count int64
	require.NoError(t, f.db.Model(&model.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no second row may be inserted")
}

func TestSubmitChecksApartmentBeforeProfile(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)
	// No apartment, no profile, no documents: the apartment check fires
	// first.
	_, err := f.flow.Submit(user.ID, 999, "")
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestSubmitChecksProfileBeforeDocuments(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)
	f.seedApartment(t, 999)

	_, err := f.flow.Submit(user.ID, 999, "")
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestSubmitRequiresVerifiedDocuments(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)
	f.seedApartment(t, 999)
	f.seedProfile(t, user.ID)

	// A pending document is not enough.
	require.NoError(t, f.db.Create(&model.Document{UserID: user.ID, FilePath: "p.pdf", Status: model.DocumentStatusPending}).Error)

	_, err := f.flow.Submit(user.ID, 999, "")
	assert.ErrorIs(t, err, ErrDocumentsMissing)
}

func TestCheckReportsApplicationState(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	result, err := f.flow.Check(user.ID, 777)
	require.NoError(t, err)
	assert.False(t, result.HasApplied)
	assert.Nil(t, result.Application)

	f.seedApartment(t, 777)
	f.seedProfile(t, user.ID)
	f.seedVerifiedDocument(t, user.ID)
	submitted, err := f.flow.Submit(user.ID, 777, "")
	require.NoError(t, err)

	result, err = f.flow.Check(user.ID, 777)
	require.NoError(t, err)
	assert.True(t, result.HasApplied)
	require.NotNil(t, result.Application)
	assert.Equal(t, submitted.ID, result.Application.ID)
}
