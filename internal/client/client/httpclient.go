package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/models"
	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 10 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:5000").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends body as JSON and decodes the envelope's data into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token := c.Token()
		if token == "" {
			return ErrUnauthorized
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		return NewAPIError(resp.StatusCode, env.Message)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// NewAPIError classifies a failed response by status code.
func NewAPIError(code int, message string) *APIError {
	var kind error
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		kind = ErrUnauthorized
	case code == http.StatusNotFound:
		kind = ErrNotFound
	case code >= 400 && code < 500:
		kind = ErrValidation
	case code == http.StatusBadGateway || code == http.StatusServiceUnavailable || code == http.StatusGatewayTimeout:
		kind = ErrUnavailable
	default:
		kind = ErrServer
	}
	return &APIError{StatusCode: code, Message: message, kind: kind}
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, "")
	}
	var h models.Health
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &h, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", false, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", false, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var res struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", true, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	var res struct {
		Exists bool `json:"exists"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/check-email", false, map[string]string{"email": email}, &res); err != nil {
		return false, err
	}
	return res.Exists, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, newPassword string) error {
	body := map[string]string{"email": email, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", false, body, nil)
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var res struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", true, nil, &res); err != nil {
		return nil, err
	}
	if res.Tasks == nil {
		res.Tasks = []models.Task{}
	}
	return res.Tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, title string) (*models.Task, error) {
	var res struct {
		Task models.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", true, map[string]string{"title": title}, &res); err != nil {
		return nil, err
	}
	return &res.Task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	var res struct {
		Task models.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), true, patch, &res); err != nil {
		return nil, err
	}
	return &res.Task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), true, nil, nil)
}
