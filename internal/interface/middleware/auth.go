package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ghost-labs/ghost-auth/pkg/helpers"
	"github.com/ghost-labs/ghost-auth/pkg/response"
)

const CtxUserIDKey = "userID"

// BearerToken extracts the token from the Authorization header, or "" when
// the header is absent or not a Bearer scheme.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// Auth validates the bearer token and injects the user ID into the context.
// Endpoints that tolerate absent or invalid tokens (logout, check-auth) read
// the header themselves instead of using this middleware.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.AbortNote(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortNote(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
