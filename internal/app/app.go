package app

import (
	"fmt"

	"bcommune_backend/database"
	"bcommune_backend/internal/config"
	"bcommune_backend/internal/email"
	"bcommune_backend/internal/handlers"
	"bcommune_backend/internal/logger"
	"bcommune_backend/internal/middleware"
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/routes"
	"bcommune_backend/internal/services"
	"bcommune_backend/internal/storage"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logger, database, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter wires storage, services, handlers and middleware into a gin
// engine. Tests call this directly against an in-memory database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	emailProvider := email.NewProvider(cfg)

	accountRepo := repositories.NewAccountRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	ideaRepo := repositories.NewIdeaRepository()
	uploadRepo := repositories.NewUploadRepository()
	jobRepo := repositories.NewJobRepository()
	projectRepo := repositories.NewProjectRepository()

	sc := &services.ServiceContainer{
		AuthService:    services.NewAuthService(accountRepo, refreshTokenRepo, emailProvider),
		AccountService: services.NewAccountService(accountRepo),
		IdeaService:    services.NewIdeaService(ideaRepo, uploadRepo, store),
		JobService:     services.NewJobService(jobRepo),
		ProjectService: services.NewProjectService(projectRepo, accountRepo),
		EmailService:   emailProvider,
	}

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(v, sc, cfg.Upload.MaxSize)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	uploadsDir := ""
	if local, ok := store.(*storage.LocalStorage); ok {
		uploadsDir = local.BasePath()
	}
	routes.RegisterRoutes(router, appHandlers, cfg, uploadsDir)

	return router, nil
}
