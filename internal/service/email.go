package service

import (
	"context"
	"fmt"

	"geoaccess-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendReviewDecision(ctx context.Context, toEmail string, req *domain.LocationAccessRequest) error {
	var subject, body string
	switch req.Status {
	case domain.RequestStatusApproved:
		subject = fmt.Sprintf("Location access request #%d approved", req.ID)
		body = fmt.Sprintf(
			"The location access request for %s has been approved.\nEmployees can now log in within %d meters of this address.",
			req.Address, req.RadiusMeters)
	case domain.RequestStatusRejected:
		subject = fmt.Sprintf("Location access request #%d rejected", req.ID)
		body = fmt.Sprintf(
			"The location access request for %s has been rejected.\nReviewer comments: %s",
			req.Address, req.ReviewComments)
	default:
		return fmt.Errorf("no notification defined for status %s", req.Status)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

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
