// Package api implements the HTTP client for the SafeGuard service. It owns
// request construction, bearer auth (via the transport layer's token
// source), and the normalization of non-2xx responses into *APIError values
// carrying the server's `detail` message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
)

// GenericErrorMessage is shown when the server reports a failure without a
// usable detail message.
const GenericErrorMessage = "Something went wrong. Please try again."

// ClientConfig contains configuration for the SafeGuard API client.
type ClientConfig struct {
	// BaseURL is the root of the SafeGuard API
	BaseURL string `env:"BASE_URL" default:"http://localhost:8000"`
}

// Client issues requests against the SafeGuard API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewClient creates a Client with the given configuration.
// If httpClient is nil, http.DefaultClient is used; callers normally pass
// the transport-layer client so requests pick up request IDs and the bearer
// token automatically.
func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        logging.GetLogger("api.client"),
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Detail     string // server-provided `detail` field, may be empty
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("api: %d", e.StatusCode)
}

// Message returns the text surfaced to the user: the server's detail
// verbatim when present, else the generic fallback.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return GenericErrorMessage
}

// ErrorMessage extracts a user-facing message from any error returned by
// this package.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	return GenericErrorMessage
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// do issues one request and decodes a 2xx JSON response into out (skipped
// when out is nil). Non-2xx responses are drained, parsed for a `detail`
// message, and returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(ctx, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.log.WarnContext(ctx, "read error body failed", "error", err)

		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}

	return apiErr
}
