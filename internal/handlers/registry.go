package handlers

import (
	"bcommune_backend/internal/services"
	"bcommune_backend/internal/validator"
)

// AppHandlers is every HTTP handler the router mounts.
type AppHandlers struct {
	Auth      *AuthHandler
	Account   *AccountHandler
	Dashboard *DashboardHandler
	Idea      *IdeaHandler
	Job       *JobHandler
	Project   *ProjectHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer, maxUpload int64) *AppHandlers {
	return &AppHandlers{
		Auth:      NewAuthHandler(v, sc.AuthService),
		Account:   NewAccountHandler(v, sc.AccountService),
		Dashboard: NewDashboardHandler(v, sc.IdeaService, sc.JobService, sc.ProjectService, sc.AccountService),
		Idea:      NewIdeaHandler(v, sc.IdeaService, maxUpload),
		Job:       NewJobHandler(v, sc.JobService),
		Project:   NewProjectHandler(v, sc.ProjectService),
	}
}
