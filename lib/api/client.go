// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

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
	"time"
)

// Per-call deadlines. OCR runs a vision model over a full screenshot
// and routinely takes minutes; the health probe must fail fast so the
// settings page does not hang.
const (
	defaultTimeout = 30 * time.Second
	ocrTimeout     = 10 * time.Minute
	healthTimeout  = 15 * time.Second
	aiTimeout      = 3 * time.Minute
)

// APIError is returned when the backend responds with a non-2xx
// status. Detail carries the backend's human-readable explanation.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Detail is the backend's error description, taken from the
	// {"detail": "..."} response body when present.
	Detail string
}

func (err *APIError) Error() string {
	if err.Detail != "" {
		return fmt.Sprintf("api: HTTP %d: %s", err.StatusCode, err.Detail)
	}
	return fmt.Sprintf("api: HTTP %d", err.StatusCode)
}

// IsNotFound returns true for HTTP 404 responses.
func (err *APIError) IsNotFound() bool {
	return err.StatusCode == http.StatusNotFound
}

// IsConflict returns true for HTTP 409 responses (duplicate names,
// concurrent edits).
func (err *APIError) IsConflict() bool {
	return err.StatusCode == http.StatusConflict
}

// TimeoutError is returned when a call's deadline expires before the
// backend answers. Its message is shown to the user verbatim.
type TimeoutError struct {
	// Operation names the call that timed out, for logs.
	Operation string
}

func (err *TimeoutError) Error() string {
	return "Požadavek vypršel (timeout). Zkus to znovu."
}

// Client talks to the tracker backend. The zero value is not usable;
// construct with [NewClient].
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL, which should
// include the API prefix (for example "http://127.0.0.1:8000/api").
// A trailing slash is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP is NewClient with a caller-supplied HTTP client,
// used by tests to point at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	client := NewClient(baseURL)
	client.httpClient = httpClient
	return client
}

// BaseURL returns the configured backend address, for display in the
// settings page.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest marshals body (when non-nil) as JSON, sends it to path
// under the client's base URL, and returns the HTTP response. Returns
// an *APIError for non-2xx status codes and a *TimeoutError when the
// deadline expires. On success the caller owns the response body; on
// error the body is already closed.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any, timeout time.Duration) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer func() {
		// The cancel is handed to the response wrapper below so the
		// timer survives until the body is drained.
		if cancel != nil {
			cancel()
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: marshaling request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: creating request: %w", method, path, err)
	}
	if body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Operation: method + " " + path}
		}
		return nil, fmt.Errorf("%s %s: sending request: %w", method, path, err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		defer httpResponse.Body.Close()
		return nil, readAPIError(httpResponse)
	}

	httpResponse.Body = &cancelOnClose{ReadCloser: httpResponse.Body, cancel: cancel}
	cancel = nil
	return httpResponse, nil
}

// cancelOnClose ties a context cancel function to the response body
// lifetime so the per-call deadline timer is released exactly when
// the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return err
}

// doJSON performs a request and decodes the JSON response body into T.
func doJSON[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, timeout time.Duration) (T, error) {
	var result T

	httpResponse, err := c.doRequest(ctx, method, path, query, body, timeout)
	if err != nil {
		return result, err
	}
	defer httpResponse.Body.Close()

	if err := json.NewDecoder(httpResponse.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return result, nil
}

// doEmpty performs a request and discards the response body. Used for
// deletes, where the backend returns no content.
func doEmpty(ctx context.Context, c *Client, method, path string, timeout time.Duration) error {
	httpResponse, err := c.doRequest(ctx, method, path, nil, nil, timeout)
	if err != nil {
		return err
	}
	defer httpResponse.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(httpResponse.Body, 4096))
	return nil
}

// readAPIError parses an error response body in the backend's format:
// {"detail": "..."}. Anything else falls back to the raw body.
func readAPIError(httpResponse *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(httpResponse.Body, 4096))

	var wireError struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Detail != "" {
		return &APIError{
			StatusCode: httpResponse.StatusCode,
			Detail:     wireError.Detail,
		}
	}

	return &APIError{
		StatusCode: httpResponse.StatusCode,
		Detail:     strings.TrimSpace(string(body)),
	}
}
