// Package client is a typed consumer of the expenseboard API. It owns the
// dashboard-side rules: inputs are validated before any request is made,
// a 401 anywhere invalidates the session through a single path, and
// lookup cascades are guarded so a stale response can never overwrite a
// newer selection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// ErrSessionExpired is returned by every call once the server answered
// 401. The caller routes the user back to login and builds a new Client.
var ErrSessionExpired = errors.New("session expired")

// APIError carries the server's failure message verbatim, the way the
// dashboard surfaces it in its error banner.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ValidationError reports input rejected locally, before any request.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client

	mu      sync.Mutex
	expired bool
}

type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Expired reports whether the session has been invalidated.
func (c *Client) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

func (c *Client) invalidate() {
	c.mu.Lock()
	c.expired = true
	c.mu.Unlock()
}

// getJSON performs a GET and decodes the envelope's data field into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// sendJSON performs a request with a JSON body and decodes data into out.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	if c.Expired() {
		return nil, ErrSessionExpired
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return nil, ErrSessionExpired
	}

	var env envelope
	if len(data) > 0 {
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = env.Detail
		}
		return nil, APIError{Status: resp.StatusCode, Message: msg}
	}
	return env.Data, nil
}

// fetchBlob downloads a binary response as-is.
func (c *Client) fetchBlob(ctx context.Context, path string) ([]byte, error) {
	if c.Expired() {
		return nil, ErrSessionExpired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return nil, ErrSessionExpired
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(data, &env)
		return nil, APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return data, nil
}
