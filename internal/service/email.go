package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"tweederent-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *sendGridEmailService) send(ctx context.Context, to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, deviceName string) error {
	subject := fmt.Sprintf("New rental request: %s", deviceName)
	plainText := fmt.Sprintf("%s wants to rent your %s.", renterName, deviceName)
	htmlContent := fmt.Sprintf("<p><strong>%s</strong> wants to rent your <strong>%s</strong>.</p>", renterName, deviceName)
	return s.send(ctx, ownerEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalApprovalNotification(ctx context.Context, renterEmail, deviceName string) error {
	subject := fmt.Sprintf("Rental approved: %s", deviceName)
	plainText := fmt.Sprintf("Your request to rent %s was approved.", deviceName)
	htmlContent := fmt.Sprintf("<p>Your request to rent <strong>%s</strong> was approved.</p>", deviceName)
	return s.send(ctx, renterEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalDenialNotification(ctx context.Context, renterEmail, deviceName string) error {
	subject := fmt.Sprintf("Rental declined: %s", deviceName)
	plainText := fmt.Sprintf("Your request to rent %s was declined.", deviceName)
	htmlContent := fmt.Sprintf("<p>Your request to rent <strong>%s</strong> was declined.</p>", deviceName)
	return s.send(ctx, renterEmail, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalCompletionNotification(ctx context.Context, renterEmail, deviceName string) error {
	subject := fmt.Sprintf("Rental completed: %s", deviceName)
	plainText := fmt.Sprintf("Your rental of %s is complete. You can now leave a review.", deviceName)
	htmlContent := fmt.Sprintf("<p>Your rental of <strong>%s</strong> is complete. You can now leave a review.</p>", deviceName)
	return s.send(ctx, renterEmail, subject, plainText, htmlContent)
}

// noopEmailService is wired when no SendGrid key is configured; it logs
// the notification instead of sending it.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendRentalRequestNotification(_ context.Context, ownerEmail, renterName, deviceName string) error {
	logger.Info("Email sending disabled, skipping rental request notification",
		"to", ownerEmail, "renter", renterName, "device", deviceName)
	return nil
}

func (noopEmailService) SendRentalApprovalNotification(_ context.Context, renterEmail, deviceName string) error {
	logger.Info("Email sending disabled, skipping approval notification",
		"to", renterEmail, "device", deviceName)
	return nil
}

func (noopEmailService) SendRentalDenialNotification(_ context.Context, renterEmail, deviceName string) error {
	logger.Info("Email sending disabled, skipping denial notification",
		"to", renterEmail, "device", deviceName)
	return nil
}

func (noopEmailService) SendRentalCompletionNotification(_ context.Context, renterEmail, deviceName string) error {
	logger.Info("Email sending disabled, skipping completion notification",
		"to", renterEmail, "device", deviceName)
	return nil
}
