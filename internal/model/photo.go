package model

import "time"

// Photo is one catalog row of the gallery. FilePath is the slash-relative
// location inside the upload directory and never changes after creation;
// FileURL is the public retrieval path derived from it at upload time.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"not null;index"`
	FilePath    string    `json:"-" gorm:"not null;unique"`
	FileURL     string    `json:"file_url" gorm:"not null"`
	Size        int64     `json:"size" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
