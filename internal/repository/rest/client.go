package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"gobarber-client/pkg/apperror"

	"github.com/google/uuid"
)

// Client is the single shared HTTP client for the GoBarber API: a base URL
// plus one mutable Authorization slot. Every repository issues requests
// through the same instance, so a bearer set after sign-in is visible to
// all of them without re-fetching anything.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	bearer string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBearer sets the default Authorization header for all subsequent
// requests issued through this client.
func (c *Client) SetBearer(token string) {
	c.mu.Lock()
	c.bearer = token
	c.mu.Unlock()
}

// ClearBearer removes the default Authorization header.
func (c *Client) ClearBearer() {
	c.mu.Lock()
	c.bearer = ""
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperror.API("could not build request", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return apperror.API("could not encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperror.API("could not build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// patchMultipart uploads a single file field, used by the avatar endpoint.
func (c *Client) patchMultipart(ctx context.Context, path, field, filename string, content []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return apperror.API("could not build upload", err)
	}
	if _, err := part.Write(content); err != nil {
		return apperror.API("could not build upload", err)
	}
	if err := writer.Close(); err != nil {
		return apperror.API("could not build upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, &buf)
	if err != nil {
		return apperror.API("could not build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

// apiError is the API's error body shape for non-2xx responses.
type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(req *http.Request, out any) error {
	c.mu.RLock()
	bearer := c.bearer
	c.mu.RUnlock()

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.API("network request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return apperror.API(apiErr.Message, fmt.Errorf("status %d", resp.StatusCode))
		}
		return apperror.API(fmt.Sprintf("request failed with status %d", resp.StatusCode), nil)
	}

	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.API("could not decode response", err)
	}
	return nil
}
