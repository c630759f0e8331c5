package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lipagate/lipagate/internal/shared/config"
)

// SMSSender delivers notifications through a JSON HTTP SMS gateway.
type SMSSender struct {
	cfg    config.SMSConfig
	client *http.Client
}

// NewSMSSender creates an HTTP SMS sender.
func NewSMSSender(cfg config.SMSConfig) *SMSSender {
	return &SMSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSSender) Name() string { return "sms" }

// Send posts one SMS. Recipient must be an E.164 phone number.
func (s *SMSSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]string{
		"to":      msg.Recipient,
		"from":    s.cfg.SenderID,
		"message": msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms send to %s failed: %w", msg.Recipient, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d for %s", resp.StatusCode, msg.Recipient)
	}
	return nil
}
