package middleware

import (
	"net/http"

	"store-app/internal/auth"
	"store-app/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when the session carries exactly
// role. Anything else is sent back to the login page without a message, so
// "not logged in" and "wrong role" look the same.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.HasRole(c, role) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
