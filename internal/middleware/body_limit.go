package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shubhamgoyal071/website/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps the request body for the JSON endpoints. Upload
// routes get their own, larger cap below.
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/upload") {
			c.Next()
			return
		}

		maxSizeMB := config.Get().Upload.MaxBodySizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware rejects oversized uploads before the handler
// reads anything, and caps the reader as a second line of enforcement.
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 5
		}
		// Multipart framing overhead on top of the file cap.
		maxBytes := int64(maxSizeMB)*1024*1024 + 1024*1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file size exceeds the %dMB limit", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
