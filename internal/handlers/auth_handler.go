package handlers

import (
	"net/http"

	"bcommune_backend/internal/models"
	"bcommune_backend/internal/services"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(v *validator.Validator, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(v),
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/individual/signup", h.SignupIndividual)
		auth.POST("/company/signup", h.SignupCompany)
		auth.POST("/individual/login", h.LoginIndividual)
		auth.POST("/company/login", h.LoginCompany)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) SignupIndividual(c *gin.Context) {
	var req dto.IndividualSignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.authService.SignupIndividual(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"account": account,
	})
}

func (h *AuthHandler) SignupCompany(c *gin.Context) {
	var req dto.CompanySignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.authService.SignupCompany(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"account": account,
	})
}

func (h *AuthHandler) LoginIndividual(c *gin.Context) {
	h.login(c, models.AccountRoleIndividual, "/individual/dashboard")
}

func (h *AuthHandler) LoginCompany(c *gin.Context) {
	h.login(c, models.AccountRoleCompany, "/company/dashboard")
}

func (h *AuthHandler) login(c *gin.Context, role models.AccountRole, redirect string) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	resp.Redirect = redirect

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.RefreshToken(h.GetDB(c), req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Logout(h.GetDB(c), req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
