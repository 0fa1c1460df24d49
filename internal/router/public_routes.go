package router

import (
	"github.com/shubhamgoyal071/website/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/", handler.Root)
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	api.GET("/webinfo", handler.GetWebInfo)

	api.GET("/photos", handler.GetPhotos)
	api.GET("/photos/:id", handler.GetPhoto)
	api.GET("/events", handler.GetEvents)

	// Lead intake: the two public forms.
	api.POST("/admission-enquiry", handler.CreateAdmissionEnquiry)
	api.POST("/contact/message", handler.CreateContactMessage)
}
