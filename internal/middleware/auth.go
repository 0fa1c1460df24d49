package middleware

import (
	"net/http"
	"strings"

	"github.com/shubhamgoyal071/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the admin surface with the Bearer session token. An
// expired token reads the same as a missing one: the client must log in
// again.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseAdminToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session is invalid or has expired"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
