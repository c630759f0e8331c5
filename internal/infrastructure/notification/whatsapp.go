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

// WhatsAppSender delivers notifications through a WhatsApp Business API
// gateway.
type WhatsAppSender struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

// NewWhatsAppSender creates an HTTP WhatsApp sender.
func NewWhatsAppSender(cfg config.WhatsAppConfig) *WhatsAppSender {
	return &WhatsAppSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WhatsAppSender) Name() string { return "whatsapp" }

// Send posts one WhatsApp text message. Recipient must be an E.164 phone
// number.
func (s *WhatsAppSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"from":              s.cfg.FromNumber,
		"to":                msg.Recipient,
		"type":              "text",
		"text":              map[string]string{"body": msg.Text},
	})
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send to %s failed: %w", msg.Recipient, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned %d for %s", resp.StatusCode, msg.Recipient)
	}
	return nil
}
