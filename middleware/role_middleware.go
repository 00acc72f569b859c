package middleware

import (
	"net/http"

	"github.com/agrienergy-connect/models"
	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route to the given role set. The allowed set is plain
// route configuration data, declared next to the route it protects.
// This middleware should be used after AuthMiddleware.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, candidate := range allowed {
				if roleStr == string(candidate) {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient privileges",
		})
		c.Abort()
	}
}
