package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"partyrent-backend/internal/logger"
)

type sendgridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendgridNotifier(apiKey, fromEmail, fromName string) NotifierService {
	return &sendgridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridNotifier) SendBookingConfirmation(ctx context.Context, email, name, itemName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking confirmed: %s", itemName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking of %s from %s to %s is confirmed.\n\nThank you!",
		name, itemName, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return s.send(email, name, subject, body)
}

func (s *sendgridNotifier) SendBookingReminder(ctx context.Context, email, name, itemName string, start time.Time) error {
	subject := fmt.Sprintf("Reminder: your rental of %s starts soon", itemName)
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental of %s starts on %s.",
		name, itemName, start.Format("2006-01-02"))
	return s.send(email, name, subject, body)
}

func (s *sendgridNotifier) SendBookingCancellation(ctx context.Context, email, name, itemName string) error {
	subject := fmt.Sprintf("Booking cancelled: %s", itemName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking of %s has been cancelled.", name, itemName)
	return s.send(email, name, subject, body)
}

func (s *sendgridNotifier) send(to, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
