package routes

import (
	"net/http"

	"bcommune_backend/internal/config"
	"bcommune_backend/internal/handlers"
	"bcommune_backend/internal/middleware"
	"bcommune_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, cfg *config.Config, uploadsDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	authMW := middleware.AuthMiddleware()
	individualMW := middleware.RequireRoles(models.AccountRoleIndividual)
	companyMW := middleware.RequireRoles(models.AccountRoleCompany)

	h.Auth.RegisterRoutes(api)
	h.Dashboard.RegisterRoutes(api, authMW, individualMW, companyMW)
	h.Project.RegisterRoutes(api, authMW, companyMW)

	authed := api.Group("", authMW)
	{
		h.Account.RegisterRoutes(authed)
		h.Idea.RegisterRoutes(authed)
		h.Job.RegisterRoutes(authed)
	}

	// Serve uploaded files straight off disk in development. Production puts
	// a web server or CDN in front instead.
	if cfg.Server.Env == "development" && uploadsDir != "" {
		router.Static("/files", uploadsDir)
	}
}
