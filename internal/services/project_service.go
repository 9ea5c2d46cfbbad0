package services

import (
	"time"

	"bcommune_backend/internal/models"
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const timelineLayout = "2006-01-02"

type ProjectService interface {
	Create(db *gorm.DB, accountID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	// Board returns everyone else's projects plus the caller's own. The two
	// lists partition the project table.
	Board(db *gorm.DB, accountID string) (*dto.ProjectBoardResponse, error)
	Update(db *gorm.DB, accountID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(db *gorm.DB, accountID, projectID string) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	accountRepo repositories.AccountRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	accountRepo repositories.AccountRepository,
) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
	}
}

func (s *ProjectServiceImpl) Create(db *gorm.DB, accountID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	// The route is company-gated already; re-check here so the invariant does
	// not depend on middleware wiring.
	account, err := s.accountRepo.FindByID(db, accountID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if account.Role != models.AccountRoleCompany {
		return nil, apperrors.ErrForbidden
	}

	if req.Budget < 0 {
		return nil, apperrors.ValidationError(map[string]string{"budget": "Must be at least 0"})
	}

	timeline, err := time.Parse(timelineLayout, req.Timeline)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"timeline": "Must be a date in YYYY-MM-DD format"})
	}

	project := &models.Project{
		AccountID:               accountID,
		Title:                   req.Title,
		Description:             req.Description,
		ProjectType:             req.ProjectType,
		Industry:                req.Industry,
		Budget:                  req.Budget,
		Timeline:                timeline,
		Location:                req.Location,
		ExpertiseRequired:       req.ExpertiseRequired,
		PaymentTerms:            req.PaymentTerms,
		NDARequired:             req.NDARequired,
		ConfidentialityRequired: req.ConfidentialityRequired,
		IPRightsRequired:        req.IPRightsRequired,
		CustomField:             req.CustomField,
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *ProjectServiceImpl) Board(db *gorm.DB, accountID string) (*dto.ProjectBoardResponse, error) {
	others, err := s.projectRepo.ListExcludingOwner(db, accountID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	mine, err := s.projectRepo.ListOwnedBy(db, accountID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	board := &dto.ProjectBoardResponse{
		Others: make([]dto.ProjectResponse, 0, len(others)),
		Mine:   make([]dto.ProjectResponse, 0, len(mine)),
	}
	for i := range others {
		board.Others = append(board.Others, toProjectResponse(&others[i]))
	}
	for i := range mine {
		board.Mine = append(board.Mine, toProjectResponse(&mine[i]))
	}
	return board, nil
}

func (s *ProjectServiceImpl) Update(db *gorm.DB, accountID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.requireOwnership(db, accountID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ProjectType != nil {
		project.ProjectType = *req.ProjectType
	}
	if req.Industry != nil {
		project.Industry = *req.Industry
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return nil, apperrors.ValidationError(map[string]string{"budget": "Must be at least 0"})
		}
		project.Budget = *req.Budget
	}
	if req.Timeline != nil {
		timeline, err := time.Parse(timelineLayout, *req.Timeline)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"timeline": "Must be a date in YYYY-MM-DD format"})
		}
		project.Timeline = timeline
	}
	if req.Location != nil {
		project.Location = req.Location
	}
	if req.ExpertiseRequired != nil {
		project.ExpertiseRequired = *req.ExpertiseRequired
	}
	if req.PaymentTerms != nil {
		project.PaymentTerms = *req.PaymentTerms
	}
	if req.NDARequired != nil {
		project.NDARequired = *req.NDARequired
	}
	if req.ConfidentialityRequired != nil {
		project.ConfidentialityRequired = *req.ConfidentialityRequired
	}
	if req.IPRightsRequired != nil {
		project.IPRightsRequired = *req.IPRightsRequired
	}
	if req.CustomField != nil {
		project.CustomField = req.CustomField
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *ProjectServiceImpl) Delete(db *gorm.DB, accountID, projectID string) error {
	if _, err := s.requireOwnership(db, accountID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(db, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// requireOwnership loads the project and verifies the caller owns it. A
// missing id gets the same Forbidden as a foreign one, so the endpoint cannot
// be used to probe which ids exist.
func (s *ProjectServiceImpl) requireOwnership(db *gorm.DB, accountID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, apperrors.InternalError(err)
	}

	if project.AccountID != accountID {
		return nil, apperrors.ErrForbidden
	}
	return project, nil
}

func toProjectResponse(project *models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:                project.ID,
		AccountID:         project.AccountID,
		Title:             project.Title,
		Description:       project.Description,
		ProjectType:       project.ProjectType,
		Industry:          project.Industry,
		Budget:            project.Budget,
		Timeline:          project.Timeline.Format(timelineLayout),
		Location:          project.Location,
		ExpertiseRequired: project.ExpertiseRequired,
		PaymentTerms:      project.PaymentTerms,
		NDARequired:       project.NDARequired,
		Confidentiality:   project.ConfidentialityRequired,
		IPRightsRequired:  project.IPRightsRequired,
		CustomField:       project.CustomField,
		CreatedAt:         project.CreatedAt,
	}
}
