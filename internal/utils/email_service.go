package utils

import (
	"fmt"
	"net/smtp"

	"github.com/felpschneider/TripSync/internal/config"
)

// EmailService handles email sending operations
type EmailService struct {
	config *config.EmailConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		config: cfg,
	}
}

// SendTripInvite emails an invitation to join a trip. For unknown emails
// inviteLink carries the one-time token URL; for existing users it points
// at the trip itself.
func (e *EmailService) SendTripInvite(to, tripTitle, inviterName, inviteLink string, newUser bool) error {
	subject := fmt.Sprintf("You were added to the trip %q on TripSync", tripTitle)
	action := "open the trip"
	if newUser {
		subject = fmt.Sprintf("Invitation to the trip %q on TripSync", tripTitle)
		action = "accept the invitation (valid for 7 days)"
	}

	body := fmt.Sprintf(`Hello,

%s invited you to the trip %q on TripSync.

Use the link below to %s:

%s

If you weren't expecting this, you can ignore this email.

Safe travels,
TripSync Team
`, inviterName, tripTitle, action, inviteLink)

	return e.sendEmail(to, subject, body)
}

// sendEmail sends an email using SMTP
func (e *EmailService) sendEmail(to, subject, body string) error {
	if e.config.SMTPUsername == "" || e.config.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)

	fromEmail := e.config.FromEmail
	if fromEmail == "" {
		fromEmail = e.config.SMTPUsername
	}

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		e.config.FromName, fromEmail, to, subject, body))

	addr := e.config.SMTPHost + ":" + e.config.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
