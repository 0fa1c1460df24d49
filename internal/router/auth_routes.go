package router

import (
	"github.com/shubhamgoyal071/website/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/login", handler.Login)
	auth.GET("/session", handler.GetSession)
}
