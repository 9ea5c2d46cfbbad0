package database

import (
	"fmt"

	"bcommune_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectGorm opens the postgres connection. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey, which the repositories
// rely on.
func ConnectGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate applies the schema for every model the app persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.CompanyProfile{},
		&models.RefreshToken{},
		&models.Idea{},
		&models.Job{},
		&models.Project{},
		&models.Upload{},
	)
}
