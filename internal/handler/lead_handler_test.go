package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubhamgoyal071/website/internal/model"
	"github.com/shubhamgoyal071/website/internal/testutils"

	"github.com/gin-gonic/gin"
)

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// Covers: submit an enquiry through the public endpoint and read it
// back through the admin listing.
func TestAdmissionEnquiryHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)

	r := gin.New()
	r.POST("/admission-enquiry", CreateAdmissionEnquiry)
	r.GET("/admissions/enquiries", GetAdmissionEnquiries)

	rec := postJSON(r, "/admission-enquiry", gin.H{
		"student_name": "Aarav Sharma",
		"parent_name":  "Priya Sharma",
		"email":        "priya@example.com",
		"phone":        "98765",
		"grade":        "UKG",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/admissions/enquiries", nil))
	if rec2.Code != http.StatusOK {
		t.Fatalf("list expected 200, got %d body=%s", rec2.Code, rec2.Body.String())
	}
	var listResp struct {
		Enquiries []model.AdmissionEnquiry `json:"enquiries"`
	}
	_ = json.Unmarshal(rec2.Body.Bytes(), &listResp)
	if len(listResp.Enquiries) != 1 || listResp.Enquiries[0].Status != "pending" {
		t.Fatalf("unexpected list resp: %s", rec2.Body.String())
	}
}

// Covers: a validation failure returns 400 and names the offending
// fields in the body.
func TestAdmissionEnquiryHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)

	r := gin.New()
	r.POST("/admission-enquiry", CreateAdmissionEnquiry)

	rec := postJSON(r, "/admission-enquiry", gin.H{
		"student_name": "Aarav",
		"parent_name":  "Priya",
		"email":        "not-an-email",
		"phone":        "98765",
		"grade":        "UKG",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	var errResp struct {
		Fields []string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &errResp)
	if len(errResp.Fields) != 1 || errResp.Fields[0] != "email" {
		t.Fatalf("expected the email field named, got %s", rec.Body.String())
	}

	// Malformed JSON is a 400 too.
	req := httptest.NewRequest(http.MethodPost, "/admission-enquiry", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("malformed body expected 400, got %d", rec2.Code)
	}
}

// Covers: the contact form round trip.
func TestContactMessageHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)

	r := gin.New()
	r.POST("/contact/message", CreateContactMessage)
	r.GET("/contact/messages", GetContactMessages)

	rec := postJSON(r, "/contact/message", gin.H{
		"name":    "Rahul",
		"email":   "rahul@example.com",
		"subject": "Transport",
		"message": "Is there a bus route via MG Road?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/contact/messages", nil))
	var listResp struct {
		Messages []model.ContactMessage `json:"messages"`
	}
	_ = json.Unmarshal(rec2.Body.Bytes(), &listResp)
	if len(listResp.Messages) != 1 || listResp.Messages[0].Status != "unread" {
		t.Fatalf("unexpected list resp: %s", rec2.Body.String())
	}

	// Missing subject and message fail validation.
	rec3 := postJSON(r, "/contact/message", gin.H{"name": "X", "email": "x@example.com"})
	if rec3.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec3.Code, rec3.Body.String())
	}
}
