package middleware

import (
	"net/http"

	"saathi/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to callers with the given role.
// Must run after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("userRole")
		if !exists || got.(string) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action requires the " + string(role) + " role"})
			return
		}
		c.Next()
	}
}
