package middleware

import (
	"github.com/shubhamgoyal071/website/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware sets Cache-Control for the served upload files.
// Assets are immutable once stored, so long-lived caching is safe.
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := config.Get().Upload.CacheControl
		if cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
