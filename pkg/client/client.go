// Package client is a typed HTTP client for the StoryTrip API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storytrip-server/internal/domain"
)

const DefaultBaseURL = "http://localhost:5001"

// APIError is a non-2xx response. Message holds the server's "error" field
// when the body had one.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("storytrip api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("storytrip api: status %d", e.StatusCode)
}

// CreatedStory is the answer to CreateStory.
type CreatedStory struct {
	ID int64 `json:"id"`
	domain.StoryPayload
}

// Client calls the /api/generate endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL. A nil httpClient gets a client without timeout,
// since story generation can take a while.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 0}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// WithTimeout returns a copy of c whose requests time out after d.
func (c *Client) WithTimeout(d time.Duration) *Client {
	hc := *c.httpClient
	hc.Timeout = d
	return &Client{baseURL: c.baseURL, httpClient: &hc}
}

// CreateStory asks the server to generate and save a story.
func (c *Client) CreateStory(ctx context.Context, req domain.GenerationRequest) (*CreatedStory, error) {
	var out CreatedStory
	if err := c.do(ctx, http.MethodPost, "/api/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStories returns every saved story, newest first.
func (c *Client) ListStories(ctx context.Context) ([]domain.Story, error) {
	var out []domain.Story
	if err := c.do(ctx, http.MethodGet, "/api/generate", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStory returns one story. A missing id yields an *APIError with status 404.
func (c *Client) GetStory(ctx context.Context, id int64) (*domain.Story, error) {
	var out domain.Story
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/generate/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
