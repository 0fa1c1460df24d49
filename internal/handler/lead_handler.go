package handler

import (
	"net/http"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAdmissionEnquiry accepts a public admission enquiry form.
func CreateAdmissionEnquiry(c *gin.Context) {
	var input service.EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	enquiry, err := service.CreateEnquiry(input)
	if err != nil {
		apperr.WriteError(c, err, "failed to submit the enquiry")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admission enquiry submitted successfully! We will contact you soon.",
		"enquiry": enquiry,
	})
}

// GetAdmissionEnquiries lists all enquiries for the admin dashboard.
func GetAdmissionEnquiries(c *gin.Context) {
	enquiries, err := service.ListEnquiries()
	if err != nil {
		apperr.WriteError(c, err, "failed to load enquiries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": enquiries})
}

// CreateContactMessage accepts a public contact form submission.
func CreateContactMessage(c *gin.Context) {
	var input service.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := service.CreateMessage(input)
	if err != nil {
		apperr.WriteError(c, err, "failed to send the message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully! We will get back to you soon.",
		"contact": message,
	})
}

// GetContactMessages lists all contact messages for the admin dashboard.
func GetContactMessages(c *gin.Context) {
	messages, err := service.ListMessages()
	if err != nil {
		apperr.WriteError(c, err, "failed to load messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
