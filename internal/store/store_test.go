package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"swiperent/internal/model"
)

// newTestDB opens a fresh in-memory database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Document{},
		&model.Apartment{},
		&model.Favorite{},
		&model.Application{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Username: "testuser", Email: email, PasswordHash: []byte("x")}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedApartment(t *testing.T, db *gorm.DB, id int64, title, location string) *model.Apartment {
	t.Helper()
	apt := &model.Apartment{ID: id, Title: title, Price: 1500, Location: location}
	require.NoError(t, db.Create(apt).Error)
	return apt
}
