package service

import (
	"log"
	"reflect"
	"strings"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/consts"
	"github.com/shubhamgoyal071/website/internal/db"
	"github.com/shubhamgoyal071/website/internal/model"

	"github.com/go-playground/validator/v10"
)

// Both lead collections share one validate-then-insert path; the payload
// types differ but the lifecycle is identical: append-only records of
// external contact, never updated or deleted.

var validate = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return consts.IsValidGrade(fl.Field().String())
	})

	return v
}

// EnquiryInput is the admission enquiry payload. Phone is free-form on
// purpose: international formats vary too much for a strict pattern.
type EnquiryInput struct {
	StudentName    string `json:"student_name" validate:"required"`
	ParentName     string `json:"parent_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Grade          string `json:"grade" validate:"required,grade"`
	PreviousSchool string `json:"previous_school"`
	Message        string `json:"message"`
}

type MessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func validateLead(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("invalid request payload")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return apperr.Validation("missing or malformed fields: "+strings.Join(fields, ", "), fields...)
}

// CreateEnquiry validates and stores one admission enquiry, then fires the
// notification email. Notification failures are logged, never surfaced:
// the lead is already safely recorded.
func CreateEnquiry(input EnquiryInput) (*model.AdmissionEnquiry, error) {
	if err := validateLead(input); err != nil {
		return nil, err
	}

	enquiry := model.AdmissionEnquiry{
		StudentName:    strings.TrimSpace(input.StudentName),
		ParentName:     strings.TrimSpace(input.ParentName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Grade:          input.Grade,
		PreviousSchool: strings.TrimSpace(input.PreviousSchool),
		Message:        strings.TrimSpace(input.Message),
		Status:         "pending",
	}

	if err := db.DB.Create(&enquiry).Error; err != nil {
		log.Printf("Enquiry insert error: %v\n", err)
		return nil, apperr.Storage("failed to save the admission enquiry", err)
	}

	if err := SendEnquiryNotification(&enquiry); err != nil {
		log.Printf("Enquiry notification error: %v\n", err)
	}

	return &enquiry, nil
}

func CreateMessage(input MessageInput) (*model.ContactMessage, error) {
	if err := validateLead(input); err != nil {
		return nil, err
	}

	message := model.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  "unread",
	}

	if err := db.DB.Create(&message).Error; err != nil {
		log.Printf("Contact message insert error: %v\n", err)
		return nil, apperr.Storage("failed to save the contact message", err)
	}

	if err := SendContactNotification(&message); err != nil {
		log.Printf("Contact notification error: %v\n", err)
	}

	return &message, nil
}

// ListEnquiries returns every admission enquiry in insertion order.
func ListEnquiries() ([]model.AdmissionEnquiry, error) {
	enquiries := make([]model.AdmissionEnquiry, 0)
	if err := db.DB.Order("id ASC").Find(&enquiries).Error; err != nil {
		return nil, apperr.Storage("failed to load admission enquiries", err)
	}
	return enquiries, nil
}

// ListMessages returns every contact message in insertion order.
func ListMessages() ([]model.ContactMessage, error) {
	messages := make([]model.ContactMessage, 0)
	if err := db.DB.Order("id ASC").Find(&messages).Error; err != nil {
		return nil, apperr.Storage("failed to load contact messages", err)
	}
	return messages, nil
}
