package middleware

import (
	"net/http"
	"strings"

	"bcommune_backend/internal/auth"
	"bcommune_backend/internal/logger"
	"bcommune_backend/internal/models"
	"bcommune_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the account identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.ErrorResponse{Error: apperrors.NewUnauthorizedError("Authorization header missing or invalid")})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.ErrorResponse{Error: apperrors.ErrInvalidToken})
			return
		}

		c.Set("accountID", claims.AccountID)
		c.Set("role", claims.Role)

		ctx := logger.WithAccountID(c.Request.Context(), claims.AccountID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles aborts with Forbidden unless the authenticated account holds
// one of the given roles. This is the individual/company dashboard gate.
func RequireRoles(roles ...models.AccountRole) gin.HandlerFunc {
	roleSet := make(map[models.AccountRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apperrors.ErrorResponse{Error: apperrors.ErrForbidden})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || !roleSet[models.AccountRole(roleStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apperrors.ErrorResponse{Error: apperrors.ErrForbidden})
			return
		}

		c.Next()
	}
}

// GetAccountID extracts the authenticated account id from the gin context.
func GetAccountID(c *gin.Context) string {
	accountID, exists := c.Get("accountID")
	if !exists {
		return ""
	}

	id, ok := accountID.(string)
	if !ok {
		return ""
	}
	return id
}
