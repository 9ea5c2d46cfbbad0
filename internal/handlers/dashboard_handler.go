package handlers

import (
	"net/http"

	"bcommune_backend/internal/services"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the two role-gated landing endpoints. Each one
// returns the board content the matching Django page rendered.
type DashboardHandler struct {
	BaseHandler
	ideaService    services.IdeaService
	jobService     services.JobService
	projectService services.ProjectService
	accountService services.AccountService
}

func NewDashboardHandler(
	v *validator.Validator,
	ideaService services.IdeaService,
	jobService services.JobService,
	projectService services.ProjectService,
	accountService services.AccountService,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:    NewBaseHandler(v),
		ideaService:    ideaService,
		jobService:     jobService,
		projectService: projectService,
		accountService: accountService,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, individualMW, companyMW gin.HandlerFunc) {
	rg.GET("/individual/dashboard", authMW, individualMW, h.IndividualDashboard)
	rg.GET("/company/dashboard", authMW, companyMW, h.CompanyDashboard)
}

func (h *DashboardHandler) IndividualDashboard(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	account, err := h.accountService.GetByID(db, accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ideas, err := h.ideaService.ListAll(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	jobs, err := h.jobService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": account,
		"ideas":   ideas,
		"jobs":    jobs,
	})
}

func (h *DashboardHandler) CompanyDashboard(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	account, err := h.accountService.GetByID(db, accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ideas, err := h.ideaService.ListAll(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	board, err := h.projectService.Board(db, accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account":  account,
		"ideas":    ideas,
		"projects": board,
	})
}
