// Package api is the client for the Roast My Excuses backend gateway.
// All AI generation, scoring, and moderation happen server-side; this
// client only moves JSON and maps failures onto the domain taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mbriard/roastcli/internal/domain"
)

// HTTPClient abstracts HTTP requests for testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for authenticated requests.
// An empty token sends the request anonymously.
type TokenSource interface {
	Token() string
}

// Client talks to the backend REST gateway
type Client struct {
	httpClient HTTPClient
	baseURL    string
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates a gateway client. baseURL is the server root
// without the /api prefix.
func NewClient(httpClient HTTPClient, baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger,
	}
}

// AuthResponse is the credential exchange payload
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// StatusUpdate is the PATCH /tasks/:id/status body. CheckedStepIndices
// and TimerFinished ride along on abandonment so the server can score
// partial credit.
type StatusUpdate struct {
	Status             domain.Status `json:"status"`
	CheckedStepIndices []int         `json:"checkedStepIndices,omitempty"`
	TimerFinished      *bool         `json:"timerFinished,omitempty"`
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	c.logger.Debug("logging in", "email", email)

	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out, "login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its credentials
func (c *Client) Register(ctx context.Context, userName, email, password string) (*AuthResponse, error) {
	c.logger.Debug("registering", "userName", userName, "email", email)

	body := map[string]string{"userName": userName, "email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &out, "register"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask submits a draft and returns the roasted task. HTTP 403
// maps to ErrQuotaExceeded so the UI can route it to the quota modal.
func (c *Client) CreateTask(ctx context.Context, description, excuse string, taskType domain.TaskType) (*domain.Task, error) {
	c.logger.Debug("creating task", "type", taskType)

	body := map[string]string{
		"description": description,
		"excuse":      excuse,
		"type":        string(taskType),
	}
	var env struct {
		Data domain.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &env, "create task"); err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.StatusCode == http.StatusForbidden {
			apiErr.Err = domain.ErrQuotaExceeded
			return nil, apiErr
		}
		return nil, err
	}

	c.logger.Debug("task created", "id", env.Data.ID)
	return &env.Data, nil
}

// ActiveTask returns the caller's in-progress task, or nil when the
// gateway reports none (404 is not an error here).
func (c *Client) ActiveTask(ctx context.Context) (*domain.Task, error) {
	var env struct {
		Data *domain.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks/active", nil, &env, "active task"); err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return env.Data, nil
}

// MyTasks fetches the caller's task history
func (c *Client) MyTasks(ctx context.Context) ([]domain.Task, error) {
	var env struct {
		Data []domain.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &env, "my tasks"); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched tasks", "count", len(env.Data))
	return env.Data, nil
}

// UpdateStatus patches a task's status. A 400 or 409 means the task was
// already terminal server-side; that maps to ErrAlreadyResolved, which
// callers treat as a redirect home rather than a failure.
func (c *Client) UpdateStatus(ctx context.Context, id string, update StatusUpdate) (*domain.Task, error) {
	c.logger.Debug("updating task status", "id", id, "status", update.Status)

	var env struct {
		Data domain.Task `json:"data"`
	}
	path := "/api/tasks/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, update, &env, "update status"); err != nil {
		if apiErr, ok := asAPIError(err); ok &&
			(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusConflict) {
			apiErr.Err = domain.ErrAlreadyResolved
			return nil, apiErr
		}
		return nil, err
	}
	return &env.Data, nil
}

// ToggleVisibility flips a task's public flag and returns the new value
func (c *Client) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	var out struct {
		IsPublic bool `json:"isPublic"`
	}
	path := "/api/tasks/" + url.PathEscape(id) + "/visibility"
	if err := c.do(ctx, http.MethodPatch, path, nil, &out, "toggle visibility"); err != nil {
		return false, err
	}
	return out.IsPublic, nil
}

// Feed fetches the shareable roast feed for the given scope
func (c *Client) Feed(ctx context.Context, scope domain.FeedScope) ([]domain.FeedItem, error) {
	var items []domain.FeedItem
	path := "/api/feed?scope=" + url.QueryEscape(string(scope))
	if err := c.do(ctx, http.MethodGet, path, nil, &items, "feed"); err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleLike toggles the caller's upvote on a feed item and returns the
// updated item.
func (c *Client) ToggleLike(ctx context.Context, id string) (*domain.FeedItem, error) {
	var item domain.FeedItem
	path := "/api/feed/" + url.PathEscape(id) + "/like"
	if err := c.do(ctx, http.MethodPost, path, nil, &item, "like"); err != nil {
		return nil, err
	}
	return &item, nil
}

// Leaderboard fetches the ranked user list
func (c *Client) Leaderboard(ctx context.Context, limit int, scope domain.FeedScope) ([]domain.LeaderboardEntry, error) {
	var env struct {
		Data []domain.LeaderboardEntry `json:"data"`
	}
	path := fmt.Sprintf("/api/users/leaderboard?limit=%d&scope=%s", limit, url.QueryEscape(string(scope)))
	if err := c.do(ctx, http.MethodGet, path, nil, &env, "leaderboard"); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdateProfile patches the caller's profile (currently the public
// visibility flag) and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, isPublic bool) (*domain.User, error) {
	body := map[string]bool{"isPublic": isPublic}
	var env struct {
		Data domain.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/users/me", body, &env, "update profile"); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// do runs one JSON round trip. Every failure comes back as *APIError;
// no raw transport error escapes to callers.
func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &domain.APIError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "error", err)
		return &domain.APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 400 {
		var errEnv struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &errEnv)
		c.logger.Warn("gateway error", "op", op, "status", resp.StatusCode, "message", errEnv.Message)
		return &domain.APIError{Op: op, StatusCode: resp.StatusCode, Message: errEnv.Message}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &domain.APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}
	return nil
}

func asAPIError(err error) (*domain.APIError, bool) {
	apiErr, ok := err.(*domain.APIError)
	return apiErr, ok
}
