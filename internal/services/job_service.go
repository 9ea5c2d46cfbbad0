package services

import (
	"bcommune_backend/internal/models"
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	ListAll(db *gorm.DB) ([]dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	salary := req.Salary
	if salary == "" {
		salary = "Not Specified"
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       salary,
		Skills:       pq.StringArray(req.Skills),
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) ListAll(db *gorm.DB) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, toJobResponse(&jobs[i]))
	}
	return responses, nil
}

func toJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
		Skills:       []string(job.Skills),
		PostedAt:     job.PostedAt,
	}
}
