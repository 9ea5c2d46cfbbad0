package repositories

import (
	"errors"
	"time"

	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	Create(db *gorm.DB, token *models.RefreshToken) error
	FindByToken(db *gorm.DB, token string) (*models.RefreshToken, error)
	DeleteByToken(db *gorm.DB, token string) error
	DeleteForAccount(db *gorm.DB, accountID string) error
	DeleteExpired(db *gorm.DB) error
}

type RefreshTokenRepositoryImpl struct{}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{}
}

func (r *RefreshTokenRepositoryImpl) Create(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *RefreshTokenRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	err := db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *RefreshTokenRepositoryImpl) DeleteByToken(db *gorm.DB, token string) error {
	result := db.Where("token = ?", token).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *RefreshTokenRepositoryImpl) DeleteForAccount(db *gorm.DB, accountID string) error {
	return db.Where("account_id = ?", accountID).Delete(&models.RefreshToken{}).Error
}

func (r *RefreshTokenRepositoryImpl) DeleteExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}
