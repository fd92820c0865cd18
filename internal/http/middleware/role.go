package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets through requests whose role (set by Auth) is one
// of allowedRoles. Roles are compared exactly: "admin" is not "ADMIN".
//
//	users.PUT("/:id", Auth(issuer), RequireRoles("ADMIN", "MANAGER"), h.UpdateUser)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.TrimSpace(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		role := strings.TrimSpace(c.GetString(userRoleKey))
		if role == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized: role missing")
			return
		}
		if _, ok := allowed[role]; !ok {
			abort(c, http.StatusForbidden, "forbidden", "Forbidden: insufficient role")
			return
		}
		c.Next()
	}
}
