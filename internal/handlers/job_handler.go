package handlers

import (
	"net/http"

	"bcommune_backend/internal/services"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(v *validator.Validator, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(v),
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("", h.List)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     job,
	})
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.ListAll(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
