package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Error categories raised by the client and the query service. Each failure
// is wrapped around exactly one of these so that callers can tell bad input,
// network trouble, upstream refusal and garbled responses apart.
var (
	ErrValidation = errors.New("invalid input")
	ErrTransport  = errors.New("request failed")
	ErrDecode     = errors.New("malformed response")
)

// UpstreamError reports a non-2xx response from the aircraft API.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %s", e.Status)
}

// Client issues one outbound GET per logical query against the aircraft API.
// It holds no mutable state between calls and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client from the given configuration. The request
// timeout applies per call; there are no retries and no caching.
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Fetch sends an HTTP GET request for the given endpoint path and returns
// the decoded result envelope.
func (c *Client) Fetch(ctx context.Context, path string) (*QueryResult, error) {
	url := c.baseURL + path
	c.logger.Debug("fetch", slog.String("url", url))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("fetch: invalid request for %s: %w", url, reqErr)
	}

	resp, respErr := c.httpClient.Do(req)
	if respErr != nil {
		return nil, fmt.Errorf("fetch: %w: %w", ErrTransport, respErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("fetch: closing response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, fmt.Errorf("fetch: %w: reading response body: %w", ErrTransport, bodyErr)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("fetch: %w: empty response body", ErrDecode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("fetch: %w: non-JSON content type %q", ErrDecode, contentType)
	}

	var result QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("fetch: %w: %w", ErrDecode, err)
	}

	return &result, nil
}
