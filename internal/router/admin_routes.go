package router

import (
	"github.com/shubhamgoyal071/website/internal/handler"
	"github.com/shubhamgoyal071/website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup) {
	// Photo management keeps its original public paths; the token gate is
	// what makes them admin-only.
	photos := api.Group("/photos", middleware.AdminAuth())
	photos.POST("/upload", middleware.UploadBodyLimitMiddleware(), handler.UploadPhoto)
	photos.DELETE("/:id", handler.DeletePhoto)

	api.GET("/admissions/enquiries", middleware.AdminAuth(), handler.GetAdmissionEnquiries)
	api.GET("/contact/messages", middleware.AdminAuth(), handler.GetContactMessages)

	admin := api.Group("/admin", middleware.AdminAuth())
	admin.GET("/dashboard", handler.GetDashboard)
	admin.GET("/integrity", handler.GetIntegrityReport)

	events := api.Group("/events", middleware.AdminAuth())
	events.POST("", handler.CreateEvent)
	events.PUT("/:id", handler.UpdateEvent)
	events.DELETE("/:id", handler.DeleteEvent)
}
