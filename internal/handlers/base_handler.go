package handlers

import (
	"bcommune_backend/internal/middleware"
	"bcommune_backend/internal/validator"
	"bcommune_backend/pkg/apperrors"
	"bcommune_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// GetDB pulls the request-scoped database handle placed by DBMiddleware.
// A missing handle is a wiring bug, not a runtime condition.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		panic("database handle missing from request context; DBMiddleware not installed")
	}
	return db.(*gorm.DB)
}

// BindAndValidate_JSON binds a JSON body and runs struct validation. It
// writes the error response itself and reports whether binding succeeded.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidate_Form binds a multipart or urlencoded form body.
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError funnels a service-layer error into the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetAccountID returns the authenticated account id, writing an Unauthorized
// response when the route was reached without AuthMiddleware.
func (h *BaseHandler) GetAccountID(c *gin.Context) (string, bool) {
	accountID := middleware.GetAccountID(c)
	if accountID == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return accountID, true
}
