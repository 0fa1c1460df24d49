package handler

import (
	"net/http"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/service"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the admin landing aggregate: the three collections
// fetched concurrently plus the derived counts.
func GetDashboard(c *gin.Context) {
	dashboard, err := service.LoadDashboard()
	if err != nil {
		apperr.WriteError(c, err, "failed to load the dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetIntegrityReport lists catalog rows whose stored file is missing, the
// detectable leftover of an interrupted delete.
func GetIntegrityReport(c *gin.Context) {
	dangling, err := service.CheckCatalogIntegrity()
	if err != nil {
		apperr.WriteError(c, err, "failed to run the integrity check")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dangling": dangling,
		"count":    len(dangling),
	})
}
