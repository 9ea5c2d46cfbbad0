package repositories

import (
	"errors"

	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	// ListOwnedBy and ListExcludingOwner partition the project set for any
	// account id.
	ListOwnedBy(db *gorm.DB, accountID string) ([]models.Project, error)
	ListExcludingOwner(db *gorm.DB, accountID string) ([]models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) ListOwnedBy(db *gorm.DB, accountID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) ListExcludingOwner(db *gorm.DB, accountID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("account_id <> ?", accountID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Update saves the full record; partial-update semantics are the service's
// job. Last write wins, there is no version column.
func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	result := db.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"title":                    project.Title,
		"description":              project.Description,
		"project_type":             project.ProjectType,
		"industry":                 project.Industry,
		"budget":                   project.Budget,
		"timeline":                 project.Timeline,
		"location":                 project.Location,
		"expertise_required":       project.ExpertiseRequired,
		"payment_terms":            project.PaymentTerms,
		"nda_required":             project.NDARequired,
		"confidentiality_required": project.ConfidentialityRequired,
		"ip_rights_required":       project.IPRightsRequired,
		"custom_field":             project.CustomField,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
