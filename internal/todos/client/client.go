package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
)

// Client talks to the todo API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL (e.g. http://localhost:8080).
// A zero timeout means requests wait until the server answers or ctx ends.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todo api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("todo api returned status %d: %s", e.StatusCode, e.Message)
}

type createTodoRequest struct {
	Task string `json:"task"`
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]domain.Todo, error) {
	var out []domain.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Todo{}
	}
	return out, nil
}

// Create submits a new task and returns the stored todo.
func (c *Client) Create(ctx context.Context, task string) (*domain.Todo, error) {
	var out domain.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", createTodoRequest{Task: task}, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the todo with id.
func (c *Client) Delete(ctx context.Context, id string) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, http.StatusOK, &out)
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call todo api: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
