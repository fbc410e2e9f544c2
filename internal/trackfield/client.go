package trackfield

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

	"github.com/coocood/freecache"
)

// Client is a thin wrapper around the athletiq backend REST api. It owns
// the bearer token obtained on login and a small in-process cache for the
// performance payloads (the results-aggregation endpoint is slow and its
// data changes rarely).

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

const appSecretHeader = "X-ATHLETIQ-TOKEN"

type Client struct {
	baseURL    string
	appSecret  string
	httpClient *http.Client
	cache      *freecache.Cache

	mu    sync.Mutex
	token string
}

func NewClient(baseURL, appSecret string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appSecret:  appSecret,
		httpClient: httpClient,
		cache:      freecache.NewCache(10 * megabyte),
	}
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearerToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.appSecret != "" {
		req.Header.Set(appSecretHeader, c.appSecret)
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do sends the request and decodes the JSON response into out (when out
// is non-nil). Error statuses are mapped to sentinel errors where a caller
// can act on them.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
