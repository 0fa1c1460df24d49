package handler

import (
	"net/http"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/service"

	"github.com/gin-gonic/gin"
)

// GetEvents lists school events for the public site, soonest first.
func GetEvents(c *gin.Context) {
	events, err := service.ListEvents()
	if err != nil {
		apperr.WriteError(c, err, "failed to load events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func CreateEvent(c *gin.Context) {
	var input service.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := service.CreateEvent(input)
	if err != nil {
		apperr.WriteError(c, err, "failed to create the event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := service.UpdateEvent(id, input)
	if err != nil {
		apperr.WriteError(c, err, "failed to update the event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := service.DeleteEvent(id); err != nil {
		apperr.WriteError(c, err, "failed to delete the event")
		return
	}
	c.Status(http.StatusNoContent)
}
