package service

import (
	"testing"
	"time"

	"github.com/shubhamgoyal071/website/internal/db"
	"github.com/shubhamgoyal071/website/internal/model"
	"github.com/shubhamgoyal071/website/internal/testutils"
)

// Covers: the dashboard joins all three collections with consistent
// counts and grouping.
func TestLoadDashboard(t *testing.T) {
	testutils.SetupDB(t)

	photos := []model.Photo{
		{Title: "One", Category: "campus", FilePath: "a/one.png", FileURL: "/uploads/photos/a/one.png"},
		{Title: "Two", Category: "sports", FilePath: "a/two.png", FileURL: "/uploads/photos/a/two.png"},
		{Title: "Three", Category: "campus", FilePath: "a/three.png", FileURL: "/uploads/photos/a/three.png"},
	}
	for i := range photos {
		if err := db.DB.Create(&photos[i]).Error; err != nil {
			t.Fatalf("seed photo: %v", err)
		}
	}
	if _, err := CreateEnquiry(validEnquiry()); err != nil {
		t.Fatalf("seed enquiry: %v", err)
	}
	if _, err := CreateMessage(MessageInput{
		Name: "Rahul", Email: "rahul@example.com", Subject: "Fees", Message: "Fee structure?",
	}); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	dash, err := LoadDashboard()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if dash.PhotoCount != 3 || len(dash.Photos) != 3 {
		t.Fatalf("expected 3 photos, got %+v", dash)
	}
	if dash.EnquiryCount != 1 || dash.MessageCount != 1 {
		t.Fatalf("unexpected counts: %+v", dash)
	}
	if dash.EnquiriesToday != 1 {
		t.Fatalf("expected 1 enquiry today, got %d", dash.EnquiriesToday)
	}
	if len(dash.PhotosByCategory["campus"]) != 2 || len(dash.PhotosByCategory["sports"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", dash.PhotosByCategory)
	}
}

// Covers: grouping preserves input order inside each bucket and the
// buckets partition the input.
func TestGroupPhotosByCategory(t *testing.T) {
	photos := []model.Photo{
		{ID: 1, Category: "campus"},
		{ID: 2, Category: "sports"},
		{ID: 3, Category: "campus"},
	}

	grouped := GroupPhotosByCategory(photos)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 buckets, got %v", grouped)
	}
	campus := grouped["campus"]
	if len(campus) != 2 || campus[0].ID != 1 || campus[1].ID != 3 {
		t.Fatalf("expected [1 3], got %+v", campus)
	}

	total := 0
	for _, bucket := range grouped {
		total += len(bucket)
	}
	if total != len(photos) {
		t.Fatalf("buckets do not partition the input: %d != %d", total, len(photos))
	}

	if len(GroupPhotosByCategory(nil)) != 0 {
		t.Fatal("expected an empty map for no photos")
	}
}

// Covers: the "today" count uses the local calendar day, not a 24 hour
// window.
func TestCountEnquiriesToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 30, 0, 0, time.Local)

	enquiries := []model.AdmissionEnquiry{
		// Earlier today, yesterday evening (still within 24h), two days
		// ago, later today.
		{ID: 1, CreatedAt: now.Add(-10 * time.Minute)},
		{ID: 2, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 3, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 4, CreatedAt: time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local)},
	}

	if got := CountEnquiriesToday(enquiries, now); got != 2 {
		t.Fatalf("expected 2 enquiries today, got %d", got)
	}
	if got := CountEnquiriesToday(nil, now); got != 0 {
		t.Fatalf("expected 0 for no enquiries, got %d", got)
	}
}
