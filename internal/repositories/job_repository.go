package repositories

import (
	"errors"

	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	ListAll(db *gorm.DB) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Order("posted_at DESC").Find(&jobs).Error
	return jobs, err
}
