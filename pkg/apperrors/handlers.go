package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every error the API returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "error", err.Error())
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
