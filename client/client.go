// Package client is the Go SDK for the Sports Mockery mobile API. One
// Client instance carries the base URL, the bearer token, and a single
// request helper every domain wrapper delegates to; construct it once at
// application start and pass it to consumers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production API origin.
const DefaultBaseURL = "https://test.sportsmockery.com"

const clientHeader = "sportsmockery-mobile"

// ErrAuthRequired marks a 401 from the mock draft surface so callers can
// redirect to login instead of showing a generic failure. Detect it with
// errors.Is.
var ErrAuthRequired = errors.New("authentication required")

// APIError is a non-2xx response normalized into an error. Message carries
// the server's `error` field when one was parseable, otherwise the generic
// "API error: <status>" fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the Sports Mockery API. Safe for concurrent use; the only
// mutable state is the bearer token behind its own lock.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to set timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used by the audio playlist helpers. Defaults to
// a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the given API origin. An empty baseURL means
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthToken stores the bearer token attached to subsequent requests. An
// empty token removes the Authorization header entirely. In-flight requests
// keep whatever token they were built with.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// AuthToken returns the currently stored bearer token.
func (c *Client) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// GM returns the trade simulator sub-client sharing this client's base URL
// and token.
func (c *Client) GM() *GMClient {
	return &GMClient{c: c}
}

// MockDraft returns the mock draft sub-client. Its calls translate 401
// responses into ErrAuthRequired.
func (c *Client) MockDraft() *MockDraftClient {
	return &MockDraftClient{c: c}
}

// do issues one API request. path is relative to the base URL, query may be
// nil, body is JSON-marshaled when non-nil, and a 2xx response body is
// decoded into out when out is non-nil. Non-2xx responses come back as
// *APIError; transport failures propagate as whatever the HTTP client
// returned, unwrapped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client", clientHeader)
	if token := c.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response failed: %w", err)
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return &APIError{Status: status, Message: envelope.Error}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("API error: %d", status)}
}
