package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shubhamgoyal071/website/internal/model"
	"github.com/shubhamgoyal071/website/internal/testutils"

	"github.com/gin-gonic/gin"
)

func eventRouter() *gin.Engine {
	r := gin.New()
	r.GET("/events", GetEvents)
	r.POST("/events", CreateEvent)
	r.PUT("/events/:id", UpdateEvent)
	r.DELETE("/events/:id", DeleteEvent)
	return r
}

// Covers: the full event lifecycle through the HTTP surface.
func TestEventHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)

	r := eventRouter()

	rec := postJSON(r, "/events", gin.H{
		"title": "Sports Meet", "date": "2026-09-05", "time": "8:00 AM", "category": "sports",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var createResp struct {
		Event model.Event `json:"event"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &createResp)
	if createResp.Event.ID == 0 {
		t.Fatalf("unexpected create resp: %s", rec.Body.String())
	}

	idPath := "/events/" + strconv.FormatUint(uint64(createResp.Event.ID), 10)

	// Update.
	body, _ := json.Marshal(gin.H{"title": "Sports Meet 2026", "date": "2026-09-06"})
	req := httptest.NewRequest(http.MethodPut, idPath, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Fatalf("update expected 200, got %d body=%s", rec2.Code, rec2.Body.String())
	}

	// Public listing sees the updated event.
	rec3 := httptest.NewRecorder()
	r.ServeHTTP(rec3, httptest.NewRequest(http.MethodGet, "/events", nil))
	var listResp struct {
		Events []model.Event `json:"events"`
	}
	_ = json.Unmarshal(rec3.Body.Bytes(), &listResp)
	if len(listResp.Events) != 1 || listResp.Events[0].Title != "Sports Meet 2026" {
		t.Fatalf("unexpected list resp: %s", rec3.Body.String())
	}

	// Delete.
	rec4 := httptest.NewRecorder()
	r.ServeHTTP(rec4, httptest.NewRequest(http.MethodDelete, idPath, nil))
	if rec4.Code != http.StatusNoContent {
		t.Fatalf("delete expected 204, got %d", rec4.Code)
	}
}

// Covers: validation and missing-id errors map to 400 and 404.
func TestEventHandlerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)

	r := eventRouter()

	rec := postJSON(r, "/events", gin.H{"description": "no title or date"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	body, _ := json.Marshal(gin.H{"title": "X", "date": "2026-01-01"})
	req := httptest.NewRequest(http.MethodPut, "/events/999", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusNotFound {
		t.Fatalf("update missing expected 404, got %d", rec2.Code)
	}

	rec3 := httptest.NewRecorder()
	r.ServeHTTP(rec3, httptest.NewRequest(http.MethodDelete, "/events/999", nil))
	if rec3.Code != http.StatusNotFound {
		t.Fatalf("delete missing expected 404, got %d", rec3.Code)
	}
}
