// Package email builds and sends the marketplace's templated notifications
// via a JSON mail API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=email

// Email is a fully built message ready for dispatch
type Email struct {
	To       string
	ToName   string
	Subject  string
	HTML     string
	Text     string
	Category string
}

// Dispatcher sends a built email. User-facing paths treat failures as
// fire-and-forget; the settlement worker retries them.
type Dispatcher interface {
	Send(ctx context.Context, msg Email) error
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From     recipient   `json:"from"`
	To       []recipient `json:"to"`
	Subject  string      `json:"subject"`
	HTML     string      `json:"html,omitempty"`
	Text     string      `json:"text,omitempty"`
	Category string      `json:"category,omitempty"`
}

// Client dispatches emails through a Mailtrap-style JSON HTTP API
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	fromName   string
	httpClient *http.Client
}

// NewClient creates a mail API client
func NewClient(apiURL, apiKey, from, fromName string) *Client {
	return &Client{
		apiURL:   apiURL,
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts the email to the mail API
func (c *Client) Send(ctx context.Context, msg Email) error {
	payload, err := json.Marshal(sendRequest{
		From:     recipient{Email: c.from, Name: c.fromName},
		To:       []recipient{{Email: msg.To, Name: msg.ToName}},
		Subject:  msg.Subject,
		HTML:     msg.HTML,
		Text:     msg.Text,
		Category: msg.Category,
	})
	if err != nil {
		return fmt.Errorf("email: failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("email: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: failed to send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("email: mail API returned status %d", resp.StatusCode)
	}

	return nil
}
