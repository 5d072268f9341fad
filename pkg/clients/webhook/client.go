package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
)

// Poster delivers digests to an external receiver.
type Poster interface {
	PostDigest(ctx context.Context, digest Digest) error
}

// Client is a resty-backed implementation of Poster that POSTs JSON to a single URL.
type Client struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client from the digest configuration.
func NewClient(cfg config.DigestConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// Digest is the JSON body posted to the webhook.
type Digest struct {
	Kind            string    `json:"kind"`
	ManagementLevel string    `json:"management_level"`
	GeneratedAt     time.Time `json:"generated_at"`
	Text            string    `json:"text"`
}

// apiError captures the common {"error": "..."} response shape.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) PostDigest(ctx context.Context, digest Digest) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post digest: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error
		if message == "" {
			message = apiErr.Message
		}
		return fmt.Errorf("webhook error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
