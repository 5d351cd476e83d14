// Package fitnessapi is the HTTP adapter for the AI workout planner API on
// RapidAPI. Every operation is a single POST with a fixed timeout; failures
// are classified into timeout, HTTP status, and transport errors so the tool
// layer can flatten them into its uniform result shape.
package fitnessapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
	headerAPIKey      = "x-rapidapi-key"
	headerAPIHost     = "x-rapidapi-host"

	requestTimeout = 30 * time.Second
)

var (
	// ErrAPIKeyMissing is returned before any request is issued when the
	// client was built without a credential.
	ErrAPIKeyMissing = errors.New("API key not configured. Please set RAPID_APIKEY environment variable.")

	// ErrTimeout is returned when the upstream does not answer within the
	// request timeout.
	ErrTimeout = errors.New("API request timed out. Please try again.")
)

// StatusError is returned when the upstream answered with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Code, e.Body)
}

// Client performs outbound calls to the fitness API. The credential is
// injected at construction; the client never reads the environment itself.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default 30s-timeout HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client for the given base URL, RapidAPI host header
// value, and API key. An empty apiKey is allowed at construction time; every
// call then fails with ErrAPIKeyMissing.
func NewClient(baseURL, host, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		host:    host,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client holds a credential.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Post sends one JSON POST to baseURL+endpoint and decodes the JSON response
// body. Exactly one attempt is made; there are no retries.
func (c *Client) Post(ctx context.Context, endpoint string, payload any) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("API request failed: encode payload: %w", err)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("API request failed: build request: %w", err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)
	req.Header.Set(headerContentType, mimeJSON)

	c.log.Debug("fitness api request", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("API request failed: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("API request failed: decode response: %w", err)
	}
	return out, nil
}

// isTimeout reports whether err is a client-timeout or deadline failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
