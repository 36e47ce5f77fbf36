package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Client is an HTTP client for the Lumina backend.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient instantiates a client. An empty token is allowed; requests are
// then sent unauthenticated and the backend rejects the protected routes.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken replaces the bearer credential, e.g. after a fresh login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues a request and decodes the response into out (when non-nil).
// Any failure is returned as a *TransportError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshaling request body")
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if in != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return &TransportError{StatusCode: response.StatusCode, Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return newStatusError(response.StatusCode, responseBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return &TransportError{StatusCode: response.StatusCode, Err: errors.Wrap(err, "unmarshaling response body")}
	}
	return nil
}
