package service

import (
	"context"
	"fmt"

	"jobportal-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed sender. With an empty API key it
// degrades to a no-op so local environments work without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		logger.Warn("Email sending disabled: no SendGrid API key configured")
	}
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendApplicationReceived(ctx context.Context, email, name, positionTitle string) error {
	if s.apiKey == "" {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)
	subject := fmt.Sprintf("Application received: %s", positionTitle)
	plainText := fmt.Sprintf("Hello %s,\n\nYour application for the position of %s has been received. We will review your application and contact you soon.\n\nThis is an automated message, please do not reply.", name, positionTitle)
	htmlContent := fmt.Sprintf("<p>Hello %s,</p><p>Your application for the position of <strong>%s</strong> has been received. We will review your application and contact you soon.</p><p>This is an automated message, please do not reply.</p>", name, positionTitle)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
