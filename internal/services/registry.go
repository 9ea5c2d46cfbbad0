package services

import "bcommune_backend/internal/email"

// ServiceContainer holds every service the app wires at startup.
type ServiceContainer struct {
	AuthService    AuthService
	AccountService AccountService
	IdeaService    IdeaService
	JobService     JobService
	ProjectService ProjectService
	EmailService   email.Provider
}
