package handlers

import (
	"net/http"

	"bcommune_backend/internal/services"
	"bcommune_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(v *validator.Validator, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    NewBaseHandler(v),
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/accounts/me", h.Me)
}

func (h *AccountHandler) Me(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(h.GetDB(c), accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
