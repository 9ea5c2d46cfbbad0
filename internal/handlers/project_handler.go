package handlers

import (
	"net/http"

	"bcommune_backend/internal/services"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(v *validator.Validator, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    NewBaseHandler(v),
		projectService: projectService,
	}
}

// RegisterRoutes mounts the project board. Everything here is company-only.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, companyMW gin.HandlerFunc) {
	projects := rg.Group("/projects", authMW, companyMW)
	{
		projects.POST("", h.Create)
		projects.GET("", h.Board)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(h.GetDB(c), accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project posted successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Board(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	board, err := h.projectService.Board(h.GetDB(c), accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(h.GetDB(c), accountID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(h.GetDB(c), accountID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
