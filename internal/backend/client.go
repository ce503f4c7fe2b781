package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Observer receives one event per backend round trip. The metrics package
// provides the production implementation.
type Observer interface {
	ObserveRequest(method, endpoint string, status int, duration time.Duration)
}

// Config controls how the client reaches the Pokémon backend API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Observer   Observer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the single outbound edge of the frontend: every backend endpoint
// is a method on it. The bearer token is passed per call because it belongs to
// the browser session, not to the process.
type Client struct {
	baseURL    string
	httpClient httpDoer
	observer   Observer
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		observer:   cfg.Observer,
	}
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimPrefix(path, "/"), body)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// doJSON sends an optional JSON body and decodes a JSON response into out.
// Non-2xx responses come back as *APIError.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, token, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// doMultipart sends a multipart/form-data body built by fill.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fill func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := fill(w); err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, token, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(req, 0, start)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()
	c.observe(req, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func (c *Client) observe(req *http.Request, status int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(req.Method, endpointLabel(req.URL.Path), status, time.Since(start))
}

// endpointLabel reduces a request path to its first segment past the base URL
// so metrics stay low-cardinality (no entity IDs in labels).
func endpointLabel(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
