package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Notion API endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"

	// APIVersion is the Notion-Version marker sent with every request.
	// Pinning the version keeps response shapes stable.
	APIVersion = "2022-06-28"

	// DefaultPageSize is the discovery batch size. 100 is the API maximum.
	DefaultPageSize = 100

	// DefaultTimeout is the per-request timeout when no HTTP client is
	// injected.
	DefaultTimeout = 30 * time.Second

	// maxErrorBodySize bounds how much of an error response body is read
	// for diagnostics.
	maxErrorBodySize = 4 * 1024
)

// Client is a minimal Notion API client covering page discovery and detail
// retrieval. All calls are synchronous and paced through the configured
// Pacer.
type Client struct {
	// httpClient performs the requests. Injected so tests can point the
	// client at a fake server.
	httpClient *http.Client

	// baseURL is the API endpoint without a trailing slash.
	baseURL string

	// token is the integration token used as the bearer credential.
	// Injected at construction; the client never reads ambient state.
	token string

	// pacer throttles requests.
	pacer Pacer

	// pageSize is the discovery batch size.
	pageSize int

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithPacer sets the pacing policy applied before every request.
func WithPacer(p Pacer) Option {
	return func(c *Client) {
		c.pacer = p
	}
}

// WithPageSize sets the discovery batch size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client authenticating with the given integration
// token. By default it talks to the public API, paces requests with a
// 100ms fixed interval, and uses a 30s per-request timeout.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		token:    token,
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.pacer == nil {
		c.pacer = NewFixedPacer(100 * time.Millisecond)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// do paces, sends one API request, and decodes a success response into out.
// A non-2xx response is returned as *APIError with the response's error
// message when the body carries one.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}

	return nil
}

// apiError builds an *APIError from a non-success response, extracting the
// API's error message when present.
func (c *Client) apiError(endpoint string, resp *http.Response) error {
	apiErr := &APIError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil && len(raw) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Message
		}
	}

	return apiErr
}
