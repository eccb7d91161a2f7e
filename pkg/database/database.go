package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"swiperent/internal/model"
)

// Open connects to Postgres and returns the handle. The handle is passed
// explicitly into each store constructor; there is no package-level
// instance.
func Open(dsn string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set; a Postgres DSN is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// Migrate runs AutoMigrate for each model individually so a failure on one
// table does not block the others.
func Migrate(db *gorm.DB, warnf func(format string, args ...interface{})) {
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"users", &model.User{}},
		{"user_profiles", &model.Profile{}},
		{"user_documents", &model.Document{}},
		{"apartments", &model.Apartment{}},
		{"favorites", &model.Favorite{}},
		{"apartment_applications", &model.Application{}},
	}
	for _, m := range migrations {
		if err := db.AutoMigrate(m.model); err != nil {
			warnf("migration warning (%s): %v", m.name, err)
		}
	}
}
