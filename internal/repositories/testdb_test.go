package repositories

import (
	"testing"

	"bcommune_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory database with the full schema. MaxOpenConns
// is pinned to 1 so every query sees the same in-memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

func createTestAccount(t *testing.T, db *gorm.DB, email string, role models.AccountRole) *models.Account {
	t.Helper()

	account := &models.Account{
		Email:        email,
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}
