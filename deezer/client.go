// Package deezer provides a typed client for the public Deezer
// music-metadata API.
//
// Every resource can be fetched two ways: through a shared Client,
// which reuses one HTTP client across calls, or through the
// package-level Get functions, which build a throwaway client per
// call and suit one-off lookups.
package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.deezer.com"
	userAgent      = "deezmeta/0.1 (https://github.com/llehouerou/deezmeta)"
)

// Client provides access to the Deezer API. It holds no state beyond
// the underlying HTTP client and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client talking to the public Deezer API.
func New() *Client {
	return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL creates a client talking to an alternate API root,
// such as a local proxy.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// fetch performs one GET against the API and decodes the body into T.
// Every resource endpoint shares this shape; resource-specific cleanup
// happens in the typed wrappers.
func fetch[T any](ctx context.Context, c *Client, path string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &out, nil
}
