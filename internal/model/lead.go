package model

import "time"

// Lead records are append-only: once created they are never updated or
// deleted through the API. Status fields exist for the admin dashboard
// display only.

type AdmissionEnquiry struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StudentName    string    `json:"student_name" gorm:"not null"`
	ParentName     string    `json:"parent_name" gorm:"not null"`
	Email          string    `json:"email" gorm:"not null"`
	Phone          string    `json:"phone" gorm:"not null"`
	Grade          string    `json:"grade" gorm:"not null"`
	PreviousSchool string    `json:"previous_school"`
	Message        string    `json:"message"`
	Status         string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:unread"`
	CreatedAt time.Time `json:"created_at"`
}
