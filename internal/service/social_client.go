package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"jeopardy-server/internal/model"
)

// SocialClient publishes the highscore confirmation token as a public
// message. Invoked only after a successful highscore submission; failures
// are logged by the caller and never affect game state.
type SocialClient interface {
	Publish(ctx context.Context, msg model.SocialMessage) error
}

// WebhookSocialClient posts the message as JSON to a configured webhook.
type WebhookSocialClient struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewWebhookSocialClient creates a webhook-backed social client.
func NewWebhookSocialClient(url string, log zerolog.Logger) *WebhookSocialClient {
	return &WebhookSocialClient{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Publish posts {username, token, timestamp}.
func (c *WebhookSocialClient) Publish(ctx context.Context, msg model.SocialMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("social publish failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("social service returned %d", resp.StatusCode)
	}

	c.log.Info().Str("username", msg.Username).Msg("published game result")
	return nil
}
