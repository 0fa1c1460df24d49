package handler

import (
	"net/http"

	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/consts"

	"github.com/gin-gonic/gin"
)

// Root is the health endpoint the deployment probes.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": config.Get().School.Name + " API is running"})
}

// GetWebInfo serves the static site configuration the public pages render.
func GetWebInfo(c *gin.Context) {
	school := config.Get().School
	c.JSON(http.StatusOK, gin.H{
		"name":    school.Name,
		"tagline": school.Tagline,
		"email":   school.Email,
		"phone":   school.Phone,
		"address": school.Address,
		"version": consts.ApplicationVersion,
		"photo_categories": gin.H{
			"gallery": consts.GalleryCategories,
			"website": consts.WebsiteCategories,
		},
		"grade_levels": consts.GradeLevels,
	})
}
