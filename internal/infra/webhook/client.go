package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/pkg/errs"
)

var ErrUnexpectedStatus = errs.New("order intake answered with a non-2xx status")

// maxErrorBody bounds how much of a failed response ends up in logs.
const maxErrorBody = 512

// Result is the intake service's acknowledgement.
type Result struct {
	OK          bool   `json:"ok"`
	OrderID     string `json:"order_id"`
	PrintQueued bool   `json:"print_queued"`
}

// StatusError carries the status and a prefix of the body of a rejected request.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("order intake returned %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrUnexpectedStatus }

type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(cfg config.WebhookConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP sends through a copy of hc, so the caller's client is left
// as it was.
func NewClientWithHTTP(cfg config.WebhookConfig, hc *http.Client) *Client {
	own := *hc
	if own.Timeout == 0 {
		own.Timeout = 3 * time.Second
	}
	return &Client{url: cfg.URL, apiKey: cfg.APIKey, http: &own}
}

// Send posts one payload. The idempotency key must be unique per attempt.
func (c *Client) Send(ctx context.Context, payload order.Payload, idempotencyKey string) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, errs.Wrap(err, "encode order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, errs.Wrap(err, "build order intake request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, errs.Wrap(err, "post order to intake")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Result{}, &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil && err != io.EOF {
		return Result{}, errs.Wrap(err, "decode order intake response")
	}
	return res, nil
}
