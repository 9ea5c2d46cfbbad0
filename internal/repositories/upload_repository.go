package repositories

import (
	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	ListForEntity(db *gorm.DB, entityType, entityID string) ([]models.Upload, error)
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) ListForEntity(db *gorm.DB, entityType, entityID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Find(&uploads).Error
	return uploads, err
}
