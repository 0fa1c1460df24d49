package handler

import (
	"net/http"
	"strings"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/service"

	"github.com/gin-gonic/gin"
)

// Login exchanges the admin credential pair for a session token.
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	result, err := service.Login(req.Username, req.Password)
	if err != nil {
		apperr.WriteError(c, err, "login failed, please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful!",
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}

// GetSession reports whether the presented token is still a valid admin
// session. Clients poll this instead of trusting local state.
func GetSession(c *gin.Context) {
	token := ""
	authHeader := c.GetHeader("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		token = parts[1]
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": service.CheckSession(token)})
}
