package service

import (
	"crypto/tls"
	"fmt"
	"html"
	"log"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/model"
)

// Lead notifications to the school office. When SMTP is not configured the
// send is skipped silently: the record is already in the database and the
// dashboard is the source of truth.

// SendEnquiryNotification emails the office about a new admission enquiry.
func SendEnquiryNotification(enquiry *model.AdmissionEnquiry) error {
	subject := fmt.Sprintf("New Admission Enquiry - %s", enquiry.StudentName)
	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2>New Admission Enquiry</h2>
	<p><strong>Student Name:</strong> %s</p>
	<p><strong>Parent Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Phone:</strong> %s</p>
	<p><strong>Grade:</strong> %s</p>
	<p><strong>Previous School:</strong> %s</p>
	<p><strong>Message:</strong> %s</p>
	<p style="color: #6b7280; font-size: 12px;">Submitted at: %s</p>
</body>
</html>`,
		htmlEscape(enquiry.StudentName),
		htmlEscape(enquiry.ParentName),
		htmlEscape(enquiry.Email),
		htmlEscape(enquiry.Phone),
		htmlEscape(enquiry.Grade),
		htmlEscape(orNA(enquiry.PreviousSchool)),
		htmlEscape(orNA(enquiry.Message)),
		enquiry.CreatedAt.Format(time.RFC3339),
	)
	return sendAdminNotification(subject, body)
}

// SendContactNotification emails the office about a new contact message.
func SendContactNotification(message *model.ContactMessage) error {
	subject := fmt.Sprintf("New Contact Message - %s", message.Subject)
	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2>New Contact Message</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Phone:</strong> %s</p>
	<p><strong>Subject:</strong> %s</p>
	<p><strong>Message:</strong> %s</p>
	<p style="color: #6b7280; font-size: 12px;">Submitted at: %s</p>
</body>
</html>`,
		htmlEscape(message.Name),
		htmlEscape(message.Email),
		htmlEscape(orNA(message.Phone)),
		htmlEscape(message.Subject),
		htmlEscape(message.Message),
		message.CreatedAt.Format(time.RFC3339),
	)
	return sendAdminNotification(subject, body)
}

func sendAdminNotification(subject, body string) error {
	cfg := config.Get()
	if cfg.SMTP.Host == "" || cfg.SMTP.Username == "" {
		log.Printf("[Email] SMTP not configured, skipping notification: %s", subject)
		return nil
	}

	toEmail := cfg.SMTP.AdminTo
	if toEmail == "" {
		toEmail = cfg.School.Email
	}
	if toEmail == "" {
		return nil
	}

	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)

	fromHeader, fromAddr, err := parseAddressForHeader(cfg.SMTP.From)
	if err != nil {
		return err
	}
	toHeader, toAddr, err := parseAddressForHeader(toEmail)
	if err != nil {
		return err
	}

	msg, err := buildEmailMessage(fromHeader, toHeader, subject, body)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)

	// Port 465 style implicit TLS needs its own dial path; otherwise
	// net/smtp negotiates STARTTLS on its own.
	if cfg.SMTP.SSL {
		return sendMailWithSSL(addr, auth, fromAddr, []string{toAddr}, msg)
	}
	return smtp.SendMail(addr, auth, fromAddr, []string{toAddr}, msg)
}

func sendMailWithSSL(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	cfg := config.Get()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         cfg.SMTP.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		log.Printf("[Email] TLS connection failed: %v", err)
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.SMTP.Host)
	if err != nil {
		log.Printf("[Email] SMTP client creation failed: %v", err)
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(auth); err != nil {
				log.Printf("[Email] SMTP auth failed: %v", err)
				return err
			}
		}
	}

	if err = client.Mail(from); err != nil {
		log.Printf("[Email] MAIL FROM failed: %v", err)
		return err
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			// Recipient addresses stay out of the log.
			log.Printf("[Email] RCPT TO failed: %v", err)
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func parseAddressForHeader(input string) (string, string, error) {
	if err := rejectCRLF(input, "address"); err != nil {
		return "", "", err
	}

	addr, err := mail.ParseAddress(input)
	if err != nil {
		return "", "", err
	}

	headerValue := addr.String()
	if err := rejectCRLF(headerValue, "address"); err != nil {
		return "", "", err
	}

	return headerValue, addr.Address, nil
}

func buildEmailMessage(fromHeader, toHeader, subject, body string) ([]byte, error) {
	if err := rejectCRLF(subject, "subject"); err != nil {
		return nil, err
	}
	encodedSubject := mime.BEncoding.Encode("UTF-8", subject)
	dateStr := time.Now().Format(time.RFC1123Z)

	header := fmt.Sprintf("Date: %s\r\nFrom: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		dateStr, fromHeader, toHeader, encodedSubject)
	return []byte(header + body), nil
}

func rejectCRLF(value string, field string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("invalid %s header: CRLF not allowed", field)
	}
	return nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func htmlEscape(s string) string {
	return html.EscapeString(s)
}
