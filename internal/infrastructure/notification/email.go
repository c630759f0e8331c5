package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/lipagate/lipagate/internal/shared/config"
)

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

// NewEmailSender creates an SMTP sender.
func NewEmailSender(cfg config.EmailConfig) *EmailSender {
	return &EmailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *EmailSender) Name() string { return "email" }

// Send delivers one email. Recipient must be an email address.
func (s *EmailSender) Send(_ context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.Recipient, err)
	}
	return nil
}
