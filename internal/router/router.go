package router

import (
	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter wires the API surface onto the engine: shared middleware
// first, then the public, auth and admin route groups.
func InitRouter(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.Get().CORS.AllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware())

	registerPublicRoutes(api)
	registerAuthRoutes(api)
	registerAdminRoutes(api)
}
