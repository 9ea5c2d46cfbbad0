package repositories

import (
	"errors"

	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

var ErrIdeaNotFound = errors.New("idea not found")

type IdeaRepository interface {
	Create(db *gorm.DB, idea *models.Idea) error
	FindByID(db *gorm.DB, id string) (*models.Idea, error)
	// ListAll returns every idea newest first. Visibility is deliberately
	// ignored, matching the original board.
	ListAll(db *gorm.DB) ([]models.Idea, error)
}

type IdeaRepositoryImpl struct{}

func NewIdeaRepository() IdeaRepository {
	return &IdeaRepositoryImpl{}
}

func (r *IdeaRepositoryImpl) Create(db *gorm.DB, idea *models.Idea) error {
	return db.Create(idea).Error
}

func (r *IdeaRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Idea, error) {
	var idea models.Idea
	err := db.First(&idea, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return &idea, nil
}

func (r *IdeaRepositoryImpl) ListAll(db *gorm.DB) ([]models.Idea, error) {
	var ideas []models.Idea
	err := db.Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}
