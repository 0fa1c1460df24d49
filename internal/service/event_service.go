package service

import (
	"strings"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/db"
	"github.com/shubhamgoyal071/website/internal/model"
)

// EventInput is the admin payload for creating or updating an event.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Category    string `json:"category"`
}

func (in EventInput) validate() error {
	fields := make([]string, 0, 2)
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(in.Date) == "" {
		fields = append(fields, "date")
	}
	if len(fields) > 0 {
		return apperr.Validation("missing required fields: "+strings.Join(fields, ", "), fields...)
	}
	return nil
}

// ListEvents returns all events ordered by date, soonest first.
func ListEvents() ([]model.Event, error) {
	events := make([]model.Event, 0)
	if err := db.DB.Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, apperr.Storage("failed to load events", err)
	}
	return events, nil
}

func CreateEvent(input EventInput) (*model.Event, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	event := model.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Category:    strings.TrimSpace(input.Category),
	}
	if err := db.DB.Create(&event).Error; err != nil {
		return nil, apperr.Storage("failed to save the event", err)
	}
	return &event, nil
}

func UpdateEvent(id uint, input EventInput) (*model.Event, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	res := db.DB.Model(&model.Event{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       strings.TrimSpace(input.Title),
		"description": strings.TrimSpace(input.Description),
		"date":        strings.TrimSpace(input.Date),
		"time":        strings.TrimSpace(input.Time),
		"category":    strings.TrimSpace(input.Category),
	})
	if res.Error != nil {
		return nil, apperr.Storage("failed to update the event", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("event not found")
	}

	var event model.Event
	if err := db.DB.First(&event, id).Error; err != nil {
		return nil, apperr.Storage("failed to load the updated event", err)
	}
	return &event, nil
}

func DeleteEvent(id uint) error {
	res := db.DB.Where("id = ?", id).Delete(&model.Event{})
	if res.Error != nil {
		return apperr.Storage("failed to delete the event", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("event not found")
	}
	return nil
}
