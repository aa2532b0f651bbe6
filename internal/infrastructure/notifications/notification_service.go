package notifications

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/you/otpauthsvc/domain"
)

// SMTPConfig holds the settings for the outbound email sender
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NotificationServiceImpl implements domain.NotificationService with Twilio
// for SMS and plain SMTP for email
type NotificationServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	smtp       SMTPConfig
}

// NewNotificationService creates a new notification service
func NewNotificationService(accountSID, authToken, fromNumber string, smtpCfg SMTPConfig) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &NotificationServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		smtp:       smtpCfg,
	}
}

// SendSMS implements domain.NotificationService
func (n *NotificationServiceImpl) SendSMS(to, message string) error {
	// If credentials are not configured, log instead of sending
	if n.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Message: %s\n", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.fromNumber)
	params.SetBody(message)

	_, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

// SendEmail implements domain.NotificationService
func (n *NotificationServiceImpl) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log instead of sending
	if n.smtp.Host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + n.smtp.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.smtp.Host, n.smtp.Port)
	auth := smtp.PlainAuth("", n.smtp.Username, n.smtp.Password, n.smtp.Host)
	if err := smtp.SendMail(addr, auth, n.smtp.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
