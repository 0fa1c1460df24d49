package handler

import (
	"net/http"
	"strconv"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPhotos lists the gallery, optionally filtered by ?category=.
func GetPhotos(c *gin.Context) {
	photos, err := service.ListPhotos(c.Query("category"))
	if err != nil {
		apperr.WriteError(c, err, "failed to load photos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func GetPhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	photo, err := service.GetPhoto(id)
	if err != nil {
		apperr.WriteError(c, err, "failed to load the photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

// UploadPhoto handles the admin multipart upload: file, title, optional
// description and a category from the fixed set.
func UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please select a file"})
		return
	}

	photo, err := service.ProcessPhotoUpload(
		file,
		c.PostForm("title"),
		c.PostForm("description"),
		c.PostForm("category"),
	)
	if err != nil {
		apperr.WriteError(c, err, "upload failed, please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Photo uploaded successfully!",
		"photo":   photo,
		"url":     photo.FileURL,
	})
}

func DeletePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := service.DeletePhoto(id); err != nil {
		apperr.WriteError(c, err, "failed to delete the photo")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
