package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"stream-portal/session"
)

// Client talks to the upstream content API. The base URL is fixed at
// construction: a server-side caller points it at the upstream directly,
// a browser-facing caller points it at the local forwarding endpoint so
// the upstream's real address is never exposed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
}

// NewClient creates a client for the API rooted at baseURL. sess may be nil
// for anonymous use; authenticated operations then send no auth headers.
func NewClient(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
	}
}

// Response is the raw outcome of a transport call: the upstream's status
// and body, surfaced unchanged.
type Response struct {
	Status int
	Body   []byte
}

// NetworkError is a transport failure where no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError is a response received with a non-2xx status. Content
// fetchers return it instead of decoding the body so callers can branch on
// the status code.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// request performs a single attempt against the upstream. There is no retry
// and no timeout beyond transport defaults.
func (c *Client) request(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, headers map[string]string, out any) error {
	resp, err := c.request(ctx, http.MethodGet, path, nil, headers)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, headers map[string]string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	merged := map[string]string{"Content-Type": "application/json"}
	for key, value := range headers {
		merged[key] = value
	}

	resp, err := c.request(ctx, http.MethodPost, path, bytes.NewReader(body), merged)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func decodeResponse(resp *Response, out any) error {
	if resp.Status < 200 || resp.Status >= 300 {
		return &UpstreamError{Status: resp.Status, Body: resp.Body}
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// authHeaders returns the attached session's auth headers, or nil for an
// anonymous client.
func (c *Client) authHeaders() map[string]string {
	if c.session == nil {
		return nil
	}
	return c.session.AuthHeaders()
}
