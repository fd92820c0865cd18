package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventbackend/internal/auth"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// TokenParser validates access tokens.
type TokenParser interface {
	Parse(token, typ string) (auth.Claims, error)
}

// Auth requires a bearer access token. A missing token is 401, a token that
// does not verify is 403.
func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := ""
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			token = strings.TrimSpace(header[7:])
		}
		if token == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "Access denied. No token provided.")
			return
		}

		claims, err := tokens.Parse(token, auth.TypeAccess)
		if err != nil {
			abort(c, http.StatusForbidden, "forbidden", "Invalid token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" on public routes.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"message":    message,
		"request_id": GetRequestID(c),
	})
}
