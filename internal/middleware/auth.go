package middleware

import (
	"strings"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey  = "userID"
	ctxIsAdminKey = "isAdmin"
)

// AuthMiddleware validates the bearer JWT and stores its claims in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.AbortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.AbortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware rejects authenticated non-admin users. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(ctxIsAdminKey)
		if !exists {
			apperrors.AbortWithError(c, apperrors.ErrForbidden)
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			apperrors.AbortWithError(c, apperrors.NewForbiddenError("Admin access required"))
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
