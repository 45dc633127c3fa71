package middleware

import (
	"net/http"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
func RequireRole(requiredRole domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		role, ok := domain.ParseRole(roleStr.(string))
		if !ok || role != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// MenteeOnly middleware requires the mentee role
func MenteeOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleMentee)
}

// MentorOnly middleware requires the mentor role
func MentorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleMentor)
}

// AdminOnly middleware requires the admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
