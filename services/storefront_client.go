package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StorefrontClient wraps the platform REST backend. Each method is a
// single HTTP call with typed shapes; there is no retry, batching or
// circuit breaking in this layer.
type StorefrontClient struct {
	baseURL string
	http    *http.Client
}

var (
	// ErrSessionExpired is returned for any upstream 401. The auth layer
	// treats it as "session expired": the stored token is cleared and the
	// shopper is sent back to login.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound is returned for upstream 404s.
	ErrNotFound = errors.New("resource not found")
)

func NewStorefrontClient(baseURL string) *StorefrontClient {
	return &StorefrontClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   bool            `json:"error,omitempty"`
}

// do performs one backend call. A bearer header is attached when token is
// non-empty. The response envelope's data field is decoded into out when
// out is non-nil.
func (c *StorefrontClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		// Surface the backend's own message when it sends one.
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, env.Message)
		}
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	if len(env.Data) == 0 {
		// Some endpoints reply with the entity at the top level.
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode backend response: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode backend data: %w", err)
	}
	return nil
}

func (c *StorefrontClient) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *StorefrontClient) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *StorefrontClient) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *StorefrontClient) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
