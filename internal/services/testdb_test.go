package services

import (
	"testing"

	"bcommune_backend/internal/config"
	"bcommune_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Account{},
		&models.CompanyProfile{},
		&models.RefreshToken{},
		&models.Idea{},
		&models.Job{},
		&models.Project{},
		&models.Upload{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })

	return db
}
