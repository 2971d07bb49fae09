package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient mocks HTTP requests and records the last request
type mockHTTPClient struct {
	response *http.Response
	err      error
	lastReq  *http.Request
	lastBody []byte
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	if req.Body != nil {
		m.lastBody, _ = io.ReadAll(req.Body)
	}
	return m.response, m.err
}

// staticToken is a TokenSource with a fixed value
type staticToken string

func (s staticToken) Token() string { return string(s) }

func jsonResponse(status int, payload any) *http.Response {
	body, _ := json.Marshal(payload)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(mock *mockHTTPClient, token string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewClient(mock, "http://localhost:3000", staticToken(token), logger)
}

func TestClient_CreateTask(t *testing.T) {
	task := domain.Task{
		ID:           "t-1",
		Description:  "Faire ma comptabilité en retard",
		Excuse:       "J'ai la flemme et il fait beau",
		Type:         domain.TypeChallenge,
		Status:       domain.StatusPending,
		RoastContent: "Ton bilan est aussi vide que ta motivation.",
		ActionPlan:   []string{"a", "b", "c"},
	}
	mock := &mockHTTPClient{response: jsonResponse(200, map[string]any{"data": task})}
	client := newTestClient(mock, "tok-123")

	got, err := client.CreateTask(context.Background(), task.Description, task.Excuse, domain.TypeChallenge)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "t-1", got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Len(t, got.ActionPlan, 3)

	assert.Equal(t, http.MethodPost, mock.lastReq.Method)
	assert.Equal(t, "/api/tasks", mock.lastReq.URL.Path)
	assert.Equal(t, "Bearer tok-123", mock.lastReq.Header.Get("Authorization"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal(mock.lastBody, &sent))
	assert.Equal(t, "challenge", sent["type"])
}

func TestClient_CreateTaskQuotaExceeded(t *testing.T) {
	mock := &mockHTTPClient{response: jsonResponse(403, map[string]string{"message": "Quota de roasts atteint"})}
	client := newTestClient(mock, "tok")

	_, err := client.CreateTask(context.Background(), "Faire ma comptabilité en retard", "J'ai la flemme", domain.TypeRoasty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrQuotaExceeded))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestClient_CreateTaskGenericFailure(t *testing.T) {
	mock := &mockHTTPClient{response: jsonResponse(500, map[string]string{"message": "Erreur lors du roast"})}
	client := newTestClient(mock, "tok")

	_, err := client.CreateTask(context.Background(), "Faire ma comptabilité en retard", "J'ai la flemme", domain.TypeChallenge)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrQuotaExceeded))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Erreur lors du roast", apiErr.UserMessage())
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	mock := &mockHTTPClient{err: errors.New("connection refused")}
	client := newTestClient(mock, "tok")

	_, err := client.MyTasks(context.Background())
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr), "raw transport errors must not escape")
}

func TestClient_ActiveTask(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		task := domain.Task{ID: "t-9", Status: domain.StatusInProgress}
		mock := &mockHTTPClient{response: jsonResponse(200, map[string]any{"data": task})}
		client := newTestClient(mock, "tok")

		got, err := client.ActiveTask(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "t-9", got.ID)
	})

	t.Run("404 means none", func(t *testing.T) {
		mock := &mockHTTPClient{response: jsonResponse(404, map[string]string{"message": "no active task"})}
		client := newTestClient(mock, "tok")

		got, err := client.ActiveTask(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestClient_UpdateStatus(t *testing.T) {
	timerDone := true
	update := StatusUpdate{
		Status:             domain.StatusAbandoned,
		CheckedStepIndices: []int{0, 1},
		TimerFinished:      &timerDone,
	}

	task := domain.Task{ID: "t-1", Status: domain.StatusAbandoned, PointsEarned: 5}
	mock := &mockHTTPClient{response: jsonResponse(200, map[string]any{"data": task})}
	client := newTestClient(mock, "tok")

	got, err := client.UpdateStatus(context.Background(), "t-1", update)
	require.NoError(t, err)
	assert.Equal(t, 5, got.PointsEarned)
	assert.Equal(t, "/api/tasks/t-1/status", mock.lastReq.URL.Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(mock.lastBody, &sent))
	assert.Equal(t, "abandoned", sent["status"])
	assert.Equal(t, []any{float64(0), float64(1)}, sent["checkedStepIndices"])
	assert.Equal(t, true, sent["timerFinished"])
}

func TestClient_UpdateStatusConflict(t *testing.T) {
	for _, status := range []int{400, 409} {
		mock := &mockHTTPClient{response: jsonResponse(status, map[string]string{"message": "Tâche déjà finie"})}
		client := newTestClient(mock, "tok")

		_, err := client.UpdateStatus(context.Background(), "t-1", StatusUpdate{Status: domain.StatusCompleted})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyResolved), "status %d must map to ErrAlreadyResolved", status)
	}
}

func TestClient_Login(t *testing.T) {
	resp := AuthResponse{
		User:  domain.User{ID: "u-1", UserName: "KingOfNap"},
		Token: "jwt-token",
	}
	mock := &mockHTTPClient{response: jsonResponse(200, resp)}
	client := newTestClient(mock, "")

	got, err := client.Login(context.Background(), "nap@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, "KingOfNap", got.User.UserName)

	// Anonymous request: no bearer header
	assert.Empty(t, mock.lastReq.Header.Get("Authorization"))
	assert.Equal(t, "/api/auth/login", mock.lastReq.URL.Path)
}

func TestClient_LoginBadCredentials(t *testing.T) {
	mock := &mockHTTPClient{response: jsonResponse(401, map[string]string{"message": "Email ou mot de passe incorrect."})}
	client := newTestClient(mock, "")

	_, err := client.Login(context.Background(), "nap@example.com", "wrong")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "Email ou mot de passe incorrect.", apiErr.UserMessage())
}

func TestClient_Feed(t *testing.T) {
	items := []domain.FeedItem{
		{ID: "f-1", User: "KingOfNap", Roast: "brutal", Upvotes: 12, IsTop: true},
		{ID: "f-2", User: "SlowMo", Roast: "doux", Upvotes: 3},
	}
	mock := &mockHTTPClient{response: jsonResponse(200, items)}
	client := newTestClient(mock, "tok")

	got, err := client.Feed(context.Background(), domain.ScopeFriends)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsTop)
	assert.Equal(t, "scope=friends", mock.lastReq.URL.RawQuery)
}

func TestClient_ToggleVisibility(t *testing.T) {
	mock := &mockHTTPClient{response: jsonResponse(200, map[string]bool{"isPublic": true})}
	client := newTestClient(mock, "tok")

	isPublic, err := client.ToggleVisibility(context.Background(), "t-1")
	require.NoError(t, err)
	assert.True(t, isPublic)
	assert.Equal(t, "/api/tasks/t-1/visibility", mock.lastReq.URL.Path)
}

func TestClient_Leaderboard(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{UserID: "u-1", Rank: 1, Username: "KingOfNap", Points: 2000},
	}
	mock := &mockHTTPClient{response: jsonResponse(200, map[string]any{"data": entries})}
	client := newTestClient(mock, "tok")

	got, err := client.Leaderboard(context.Background(), 50, domain.ScopeGlobal)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "limit=50&scope=global", mock.lastReq.URL.RawQuery)
}

func TestClient_UpdateProfile(t *testing.T) {
	user := domain.User{ID: "u-1", UserName: "marcel", IsPublic: true}
	mock := &mockHTTPClient{response: jsonResponse(200, map[string]any{"data": user})}
	client := newTestClient(mock, "tok")

	got, err := client.UpdateProfile(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, got.IsPublic)
	assert.Equal(t, http.MethodPatch, mock.lastReq.Method)
	assert.Equal(t, "/api/users/me", mock.lastReq.URL.Path)
	assert.JSONEq(t, `{"isPublic": true}`, string(mock.lastBody))
}
