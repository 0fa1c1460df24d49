package model

import "time"

// Event is a school calendar entry shown on the public site and managed
// from the admin dashboard.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        string    `json:"date" gorm:"not null;index"` // YYYY-MM-DD
	Time        string    `json:"time"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
