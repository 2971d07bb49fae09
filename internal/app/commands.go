package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/services/api"
)

// Result messages carried back from the gateway commands. Each command
// resolves to exactly one of these; errors ride along instead of being
// delivered separately.

type authResultMsg struct {
	resp       *api.AuthResponse
	registered bool
	err        error
}

type taskCreatedMsg struct {
	task *domain.Task
	err  error
}

type taskStartedMsg struct {
	task *domain.Task
	err  error
}

type taskResolvedMsg struct {
	outcome domain.Outcome
	task    *domain.Task
	err     error
}

type activeTaskMsg struct {
	task *domain.Task
	err  error
}

type myTasksMsg struct {
	tasks []domain.Task
	err   error
}

type feedLoadedMsg struct {
	scope domain.FeedScope
	items []domain.FeedItem
	err   error
}

type boardLoadedMsg struct {
	scope   domain.FeedScope
	entries []domain.LeaderboardEntry
	err     error
}

type likeToggledMsg struct {
	id   string
	item *domain.FeedItem
	err  error
}

type visibilityToggledMsg struct {
	taskID string
	public bool
	err    error
}

type toastTickMsg time.Time

func (m Model) timeout() time.Duration {
	return time.Duration(m.config.API.TimeoutMs) * time.Millisecond
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		resp, err := m.api.Login(ctx, email, password)
		return authResultMsg{resp: resp, err: err}
	}
}

func (m Model) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		resp, err := m.api.Register(ctx, username, email, password)
		return authResultMsg{resp: resp, registered: true, err: err}
	}
}

func (m Model) createTaskCmd(description, excuse string, taskType domain.TaskType) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		task, err := m.api.CreateTask(ctx, description, excuse, taskType)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m Model) startTaskCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		task, err := m.api.UpdateStatus(ctx, taskID, api.StatusUpdate{
			Status: domain.StatusInProgress,
		})
		return taskStartedMsg{task: task, err: err}
	}
}

func (m Model) completeTaskCmd(taskID string, checked []int) tea.Cmd {
	finished := true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		task, err := m.api.UpdateStatus(ctx, taskID, api.StatusUpdate{
			Status:             domain.StatusCompleted,
			CheckedStepIndices: checked,
			TimerFinished:      &finished,
		})
		return taskResolvedMsg{outcome: domain.OutcomeCompleted, task: task, err: err}
	}
}

func (m Model) abandonTaskCmd(taskID string, checked []int, timerDone bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		task, err := m.api.UpdateStatus(ctx, taskID, api.StatusUpdate{
			Status:             domain.StatusAbandoned,
			CheckedStepIndices: checked,
			TimerFinished:      &timerDone,
		})
		return taskResolvedMsg{outcome: domain.OutcomeAbandoned, task: task, err: err}
	}
}

func (m Model) checkActiveTaskCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		task, err := m.api.ActiveTask(ctx)
		return activeTaskMsg{task: task, err: err}
	}
}

func (m Model) loadMyTasksCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		tasks, err := m.api.MyTasks(ctx)
		return myTasksMsg{tasks: tasks, err: err}
	}
}

func (m Model) loadFeedCmd(scope domain.FeedScope) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		items, err := m.api.Feed(ctx, scope)
		return feedLoadedMsg{scope: scope, items: items, err: err}
	}
}

func (m Model) loadLeaderboardCmd(scope domain.FeedScope) tea.Cmd {
	limit := m.config.Leaderboard.Limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		entries, err := m.api.Leaderboard(ctx, limit, scope)
		return boardLoadedMsg{scope: scope, entries: entries, err: err}
	}
}

func (m Model) toggleLikeCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		item, err := m.api.ToggleLike(ctx, itemID)
		return likeToggledMsg{id: itemID, item: item, err: err}
	}
}

func (m Model) toggleVisibilityCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout())
		defer cancel()
		public, err := m.api.ToggleVisibility(ctx, taskID)
		return visibilityToggledMsg{taskID: taskID, public: public, err: err}
	}
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
