package service

import (
	"sync"
	"time"

	"github.com/shubhamgoyal071/website/internal/model"
)

// Dashboard is the admin landing view: all three collections plus the
// derived counts the cards display.
type Dashboard struct {
	Photos           []model.Photo            `json:"photos"`
	Enquiries        []model.AdmissionEnquiry `json:"enquiries"`
	Messages         []model.ContactMessage   `json:"messages"`
	PhotosByCategory map[string][]model.Photo `json:"photos_by_category"`
	PhotoCount       int                      `json:"photo_count"`
	EnquiryCount     int                      `json:"enquiry_count"`
	MessageCount     int                      `json:"message_count"`
	EnquiriesToday   int                      `json:"enquiries_today"`
}

// LoadDashboard issues the three list queries concurrently and joins them.
// The reads touch disjoint tables so ordering between them is irrelevant;
// any single failure fails the whole call with that error.
func LoadDashboard() (*Dashboard, error) {
	var (
		wg        sync.WaitGroup
		photos    []model.Photo
		enquiries []model.AdmissionEnquiry
		messages  []model.ContactMessage
		errPhotos error
		errEnq    error
		errMsg    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		photos, errPhotos = ListPhotos("")
	}()
	go func() {
		defer wg.Done()
		enquiries, errEnq = ListEnquiries()
	}()
	go func() {
		defer wg.Done()
		messages, errMsg = ListMessages()
	}()
	wg.Wait()

	for _, err := range []error{errPhotos, errEnq, errMsg} {
		if err != nil {
			return nil, err
		}
	}

	return &Dashboard{
		Photos:           photos,
		Enquiries:        enquiries,
		Messages:         messages,
		PhotosByCategory: GroupPhotosByCategory(photos),
		PhotoCount:       len(photos),
		EnquiryCount:     len(enquiries),
		MessageCount:     len(messages),
		EnquiriesToday:   CountEnquiriesToday(enquiries, time.Now()),
	}, nil
}

// GroupPhotosByCategory buckets photos into category -> photos, preserving
// the input order inside each bucket.
func GroupPhotosByCategory(photos []model.Photo) map[string][]model.Photo {
	grouped := make(map[string][]model.Photo)
	for _, p := range photos {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped
}

// CountEnquiriesToday counts enquiries created on the same calendar day as
// now, in local time.
func CountEnquiriesToday(enquiries []model.AdmissionEnquiry, now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, e := range enquiries {
		ey, em, ed := e.CreatedAt.Local().Date()
		if ey == y && em == m && ed == d {
			count++
		}
	}
	return count
}
