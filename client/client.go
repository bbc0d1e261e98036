// Package client is a Go client for the villa API. Each service method builds
// one outbound request and decodes the response into the caller's type.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"villa-api-backend/config"
)

const userAgent = "villa-api-go/1.0"

// Client talks to a villa API server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Villas       *VillaService
	VillaNumbers *VillaNumberService
}

// New creates a client for the server at baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	c.Villas = &VillaService{client: c}
	c.VillaNumbers = &VillaNumberService{client: c}
	return c
}

// NewFromConfig creates a client from the client section of the configuration.
func NewFromConfig(cfg config.ClientConfig) *Client {
	return New(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

// Request describes one outbound call. Path is joined to the base URL and
// Body, when set, is sent as JSON.
type Request struct {
	Method      string
	Path        string
	Body        any
	ContentType string
}

// FieldError is a per-field problem reported by the server.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int          `json:"status"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("villa api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("villa api: %d %s", e.StatusCode, e.Message)
}

// Send performs req and decodes a successful response body into T. Responses
// without a body leave T at its zero value.
func Send[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return out, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return out, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if req.Body != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return out, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{}
		_ = json.Unmarshal(data, apiErr)
		apiErr.StatusCode = resp.StatusCode
		return out, apiErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
