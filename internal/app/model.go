// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/config"
	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/services/api"
	"github.com/mbriard/roastcli/internal/services/session"
	"github.com/mbriard/roastcli/internal/types"
	"github.com/mbriard/roastcli/internal/ui/overlay"
	"github.com/mbriard/roastcli/internal/ui/roastbar"
	"github.com/mbriard/roastcli/internal/ui/screens"
	"github.com/mbriard/roastcli/internal/ui/statusbar"
	"github.com/mbriard/roastcli/internal/ui/styles"
	"github.com/mbriard/roastcli/internal/ui/toast"
)

// Re-export toast types for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// Model is the main application state
type Model struct {
	screen types.Screen

	// Screen models
	auth       screens.AuthForm
	create     screens.CreateFlow
	roast      screens.RoastView
	focus      screens.Focus
	completion screens.Completion
	mytasks    screens.MyTasks
	feed       screens.Feed
	board      screens.Leaderboard

	// Create-flow loading bar. The create response and the bar finishing
	// are independent events; the roast shows only after both.
	bar     roastbar.Model
	barDone bool

	lifecycle *domain.Lifecycle

	overlays     *overlay.Stack
	toasts       []Toast
	toastTicking bool

	user     *domain.User
	resuming bool

	// Services
	api     *api.Client
	session *session.Store
	config  *config.Config
	logger  *slog.Logger
	styles  *styles.Styles

	width  int
	height int
}

// New creates the application model. A non-nil creds means the stored
// token was still valid and the auth screen is skipped.
func New(apiClient *api.Client, store *session.Store, cfg *config.Config, creds *session.Credentials, logger *slog.Logger) Model {
	st := styles.New()

	m := Model{
		screen:    types.ScreenAuth,
		auth:      screens.NewAuthForm(st),
		create:    screens.NewCreateFlow(st),
		mytasks:   screens.NewMyTasks(st),
		feed:      screens.NewFeed(st),
		bar:       roastbar.New(st),
		lifecycle: domain.NewLifecycle(),
		overlays:  overlay.NewStack(),
		api:       apiClient,
		session:   store,
		config:    cfg,
		logger:    logger,
		styles:    st,
	}
	m.board = screens.NewLeaderboard("", st)

	if creds != nil {
		m.user = &creds.User
		m.screen = types.ScreenCreate
		m.resuming = true
		m.board = screens.NewLeaderboard(creds.User.ID, st)
	}

	return m
}

// Init starts the cursor blink and, for a restored session, the lookup
// of a possibly still-running task
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.screen == types.ScreenAuth {
		cmds = append(cmds, m.auth.Init())
	} else {
		cmds = append(cmds, m.create.Init())
	}
	if m.resuming {
		cmds = append(cmds, m.checkActiveTaskCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlays.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case toastTickMsg:
		m.toasts = toast.Prune(m.toasts, time.Now())
		if len(m.toasts) == 0 {
			m.toastTicking = false
			return m, nil
		}
		return m, toastTick()

	// Screen intents
	case screens.SubmitLoginMsg:
		return m, m.loginCmd(msg.Email, msg.Password)

	case screens.SubmitRegisterMsg:
		return m, m.registerCmd(msg.Username, msg.Email, msg.Password)

	case screens.SubmitDraftMsg:
		return m.handleDraftSubmit(msg)

	case screens.StartFocusMsg:
		if err := m.lifecycle.StartFocus(); err != nil {
			m.roast = m.roast.SetPending(false)
			return m, nil
		}
		return m, m.startTaskCmd(msg.TaskID)

	case screens.ToggleStepMsg:
		return m.handleToggleStep(msg.Index)

	case screens.ValidateTaskMsg:
		if task := m.lifecycle.Task(); task != nil {
			m.focus = m.focus.SetPending(true)
			return m, m.completeTaskCmd(task.ID, m.lifecycle.CheckedIndices())
		}
		return m, nil

	case screens.RequestGiveUpMsg:
		dialog := overlay.NewConfirmDialog(
			"Abandonner ?",
			"Abandonner maintenant, c'est donner raison à ton excuse.").Danger()
		return m, m.overlays.Push(dialog)

	case screens.ToggleVisibilityMsg:
		return m, m.toggleVisibilityCmd(msg.TaskID)

	case screens.ToggleLikeMsg:
		return m, m.toggleLikeCmd(msg.FeedItemID)

	case screens.ChangeFeedScopeMsg:
		m.feed = m.feed.SetLoading()
		return m, m.loadFeedCmd(msg.Scope)

	case screens.ChangeBoardScopeMsg:
		m.board = m.board.SetLoading()
		return m, m.loadLeaderboardCmd(msg.Scope)

	// Roastbar simulation
	case roastbar.TickMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case roastbar.FinishedMsg:
		m.barDone = true
		return m.maybeShowRoast()

	// Countdown
	case timer.TickMsg, timer.StartStopMsg:
		if m.screen == types.ScreenFocus {
			var cmd tea.Cmd
			m.focus, cmd = m.focus.Update(msg)
			return m, cmd
		}
		return m, nil

	case timer.TimeoutMsg:
		return m.handleTimerDone(msg)

	// Gateway results
	case authResultMsg:
		return m.handleAuthResult(msg)

	case taskCreatedMsg:
		return m.handleTaskCreated(msg)

	case taskStartedMsg:
		return m.handleTaskStarted(msg)

	case taskResolvedMsg:
		return m.handleTaskResolved(msg)

	case activeTaskMsg:
		return m.handleActiveTask(msg)

	case myTasksMsg:
		if msg.err != nil {
			m.mytasks = m.mytasks.SetTasks(nil)
			return m, m.errToast(msg.err)
		}
		m.mytasks = m.mytasks.SetTasks(msg.tasks)
		return m, nil

	case feedLoadedMsg:
		if msg.err != nil {
			m.feed = m.feed.SetItems(msg.scope, nil)
			return m, m.errToast(msg.err)
		}
		m.feed = m.feed.SetItems(msg.scope, msg.items)
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			m.board = m.board.SetEntries(msg.scope, nil)
			return m, m.errToast(msg.err)
		}
		m.board = m.board.SetEntries(msg.scope, msg.entries)
		return m, nil

	case likeToggledMsg:
		if msg.err != nil {
			return m, m.errToast(msg.err)
		}
		m.feed = m.feed.ApplyLike(msg.id, msg.item.IsLiked, msg.item.Upvotes)
		return m, nil

	case visibilityToggledMsg:
		if msg.err != nil {
			return m, m.errToast(msg.err)
		}
		m.mytasks = m.mytasks.SetVisibility(msg.taskID, msg.public)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.overlays.IsEmpty() {
		return m, m.overlays.Update(msg)
	}

	// Logout works everywhere past the auth screen
	if msg.String() == "ctrl+d" && m.screen != types.ScreenAuth {
		return m.logout()
	}

	switch m.screen {
	case types.ScreenAuth:
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(msg)
		return m, cmd

	case types.ScreenCreate:
		if m.bar.Active() {
			// the bar owns the screen while the roast is cooking
			return m, nil
		}
		switch msg.String() {
		case "ctrl+f":
			return m.openFeed()
		case "ctrl+k":
			return m.openLeaderboard()
		case "ctrl+b":
			return m.openMyTasks()
		}
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd

	case types.ScreenRoast:
		switch msg.String() {
		case "?":
			return m, m.overlays.Push(overlay.NewHelpOverlay())
		case "esc":
			m.goHome()
			return m, nil
		case "f":
			return m.openFeed()
		}
		var cmd tea.Cmd
		m.roast, cmd = m.roast.Update(msg)
		return m, cmd

	case types.ScreenFocus:
		if msg.String() == "?" {
			return m, m.overlays.Push(overlay.NewHelpOverlay())
		}
		var cmd tea.Cmd
		m.focus, cmd = m.focus.Update(msg)
		return m, cmd

	case types.ScreenCompletion:
		switch msg.String() {
		case "enter":
			m.goHome()
			return m, nil
		case "f":
			return m.openFeed()
		case "c":
			return m.openLeaderboard()
		case "m":
			return m.openMyTasks()
		case "?":
			return m, m.overlays.Push(overlay.NewHelpOverlay())
		}
		return m, nil

	case types.ScreenMyTasks, types.ScreenFeed, types.ScreenLeaderboard:
		switch msg.String() {
		case "esc":
			return m.returnFromAux()
		case "?":
			return m, m.overlays.Push(overlay.NewHelpOverlay())
		}
		var cmd tea.Cmd
		switch m.screen {
		case types.ScreenMyTasks:
			m.mytasks, cmd = m.mytasks.Update(msg)
		case types.ScreenFeed:
			m.feed, cmd = m.feed.Update(msg)
		default:
			m.board, cmd = m.board.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	m.overlays.Pop()

	switch value := msg.Value.(type) {
	case overlay.ConfirmResult:
		if !value.Confirmed {
			return m, nil
		}
		task := m.lifecycle.Task()
		if task == nil {
			return m, nil
		}
		m.focus = m.focus.SetPending(true)
		return m, m.abandonTaskCmd(task.ID, m.lifecycle.CheckedIndices(), m.lifecycle.TimerDone())

	case overlay.QuotaChoice:
		if value.GoToFeed {
			return m.openFeed()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleDraftSubmit(msg screens.SubmitDraftMsg) (tea.Model, tea.Cmd) {
	if _, err := m.lifecycle.Submit(msg.Description, msg.Excuse); err != nil {
		// duplicate submit or machine out of phase; the form already
		// validated the fields
		m.create = m.create.SetPending(false)
		return m, nil
	}

	m.barDone = false
	var barCmd tea.Cmd
	m.bar, barCmd = m.bar.Activate()
	return m, tea.Batch(
		barCmd,
		m.createTaskCmd(msg.Description, msg.Excuse, msg.Type),
	)
}

func (m Model) handleToggleStep(index int) (tea.Model, tea.Cmd) {
	err := m.lifecycle.ToggleStep(index)
	if errors.Is(err, domain.ErrStepLocked) {
		m.focus = m.focus.SetNotice("Termine d'abord le timer, la dernière étape attendra.")
	}
	m.refreshFocusSteps()
	return m, nil
}

func (m Model) handleTimerDone(msg timer.TimeoutMsg) (tea.Model, tea.Cmd) {
	if m.screen != types.ScreenFocus {
		return m, nil
	}

	m.lifecycle.TimerFinished()
	var cmd tea.Cmd
	m.focus, cmd = m.focus.Update(msg)
	m.refreshFocusSteps()

	// terminal bell stands in for the phone vibration
	return m, tea.Batch(cmd, tea.Printf("\a"))
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("auth failed", "error", msg.err)
		m.auth = m.auth.SetError(userMessage(msg.err))
		return m, nil
	}

	creds := session.Credentials{Token: msg.resp.Token, User: msg.resp.User}
	if err := m.session.Save(creds); err != nil {
		m.logger.Warn("failed to persist credentials", "error", err)
	}

	m.user = &msg.resp.User
	m.board = screens.NewLeaderboard(msg.resp.User.ID, m.styles)
	m.auth = m.auth.SetPending(false)
	m.goHome()

	welcome := "Re-bonjour " + msg.resp.User.UserName + " !"
	if msg.registered {
		welcome = "Bienvenue " + msg.resp.User.UserName + ". Prépare tes excuses."
	}
	return m, tea.Batch(m.create.Init(), m.addToast(ToastSuccess, welcome, 4*time.Second))
}

func (m Model) handleTaskCreated(msg taskCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if err := m.lifecycle.SubmitFailed(); err != nil {
			m.logger.Warn("create failure in unexpected phase", "error", err)
		}
		m.bar = m.bar.Deactivate()
		m.barDone = false
		m.create = m.create.SetPending(false)

		if errors.Is(msg.err, domain.ErrQuotaExceeded) {
			return m, m.overlays.Push(overlay.NewQuotaDialog(serverMessage(msg.err)))
		}
		return m, m.errToast(msg.err)
	}

	if err := m.lifecycle.Created(*msg.task); err != nil {
		m.logger.Warn("created in unexpected phase", "error", err)
		return m, nil
	}
	return m.maybeShowRoast()
}

// maybeShowRoast flips to the roast screen once the response has landed
// and the bar has played out
func (m Model) maybeShowRoast() (tea.Model, tea.Cmd) {
	if !m.barDone || m.lifecycle.Phase() != domain.PhaseAwaitingDecision {
		return m, nil
	}

	m.bar = m.bar.Deactivate()
	m.barDone = false
	m.create = m.create.SetPending(false)
	m.roast = screens.NewRoastView(*m.lifecycle.Task(), m.styles)
	m.screen = types.ScreenRoast
	return m, nil
}

func (m Model) handleTaskStarted(msg taskStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.roast = m.roast.SetPending(false)
		if errors.Is(msg.err, domain.ErrAlreadyResolved) {
			m.goHome()
			return m, nil
		}
		// the machine moved to Focusing optimistically; walk it back by
		// resetting to the decision point via a fresh machine
		m.restoreAwaitingDecision()
		return m, m.errToast(msg.err)
	}

	m.lifecycle.Started(*msg.task)
	m.enterFocus(*msg.task)
	return m, m.focus.Init()
}

func (m Model) handleTaskResolved(msg taskResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.focus = m.focus.SetPending(false)
		if errors.Is(msg.err, domain.ErrAlreadyResolved) {
			m.goHome()
			return m, nil
		}
		return m, m.errToast(msg.err)
	}

	points := msg.task.PointsEarned
	levelUp := msg.task.IsLevelUp

	var err error
	if msg.outcome == domain.OutcomeCompleted {
		err = m.lifecycle.Complete(points, levelUp)
	} else {
		err = m.lifecycle.Abandon(points)
	}
	if err != nil {
		m.logger.Warn("resolution in unexpected phase", "error", err)
	}

	if m.user != nil {
		m.user.Points += points
		if err := m.session.UpdateUser(*m.user); err != nil {
			m.logger.Warn("failed to persist user update", "error", err)
		}
	}

	m.completion = screens.NewCompletion(*msg.task, msg.outcome, points, levelUp, m.styles)
	m.screen = types.ScreenCompletion
	return m, nil
}

func (m Model) handleActiveTask(msg activeTaskMsg) (tea.Model, tea.Cmd) {
	m.resuming = false

	if msg.err != nil {
		return m, m.errToast(msg.err)
	}
	if msg.task == nil {
		return m, nil
	}

	if err := m.lifecycle.ResumeFocus(*msg.task); err != nil {
		m.logger.Warn("cannot resume task", "task", msg.task.ID, "error", err)
		return m, nil
	}

	m.enterFocus(*msg.task)
	return m, m.focus.Init()
}

// enterFocus builds the focus screen for a started or resumed task
func (m *Model) enterFocus(task domain.Task) {
	m.focus = screens.NewFocus(task, task.RemainingAt(time.Now()), m.styles)
	m.screen = types.ScreenFocus
	m.refreshFocusSteps()
}

// refreshFocusSteps projects the lifecycle's step state into the screen
func (m *Model) refreshFocusSteps() {
	task := m.lifecycle.Task()
	if task == nil {
		return
	}

	steps := make([]screens.StepView, 0, len(task.ActionPlan))
	for i, raw := range task.ActionPlan {
		steps = append(steps, screens.StepView{
			Label:   screens.StripStepPrefix(raw),
			Checked: m.lifecycle.StepChecked(i),
			Locked:  m.lifecycle.StepLocked(i),
		})
	}
	m.focus = m.focus.SetSteps(steps, m.lifecycle.CanValidate())
}

// restoreAwaitingDecision rebuilds the machine at the decision point
// after a failed start request
func (m *Model) restoreAwaitingDecision() {
	task := m.lifecycle.Task()
	m.lifecycle.Reset()
	if task == nil {
		return
	}
	if _, err := m.lifecycle.Submit(task.Description, task.Excuse); err != nil {
		return
	}
	if err := m.lifecycle.Created(*task); err != nil {
		m.logger.Warn("failed to restore decision point", "error", err)
	}
}

// goHome resets the task flow and shows a fresh draft
func (m *Model) goHome() {
	m.lifecycle.Reset()
	m.create = m.create.Reset()
	m.bar = m.bar.Deactivate()
	m.barDone = false
	m.screen = types.ScreenCreate
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.session.Clear(); err != nil {
		m.logger.Warn("failed to clear credentials", "error", err)
	}
	m.user = nil
	m.lifecycle.Reset()
	m.auth = screens.NewAuthForm(m.styles)
	m.create = m.create.Reset()
	m.bar = m.bar.Deactivate()
	m.barDone = false
	m.overlays.Clear()
	m.screen = types.ScreenAuth
	return m, m.auth.Init()
}

func (m Model) openFeed() (tea.Model, tea.Cmd) {
	m.feed = screens.NewFeed(m.styles)
	m.screen = types.ScreenFeed
	return m, m.loadFeedCmd(domain.ScopeGlobal)
}

func (m Model) openMyTasks() (tea.Model, tea.Cmd) {
	m.mytasks = screens.NewMyTasks(m.styles)
	m.screen = types.ScreenMyTasks
	return m, m.loadMyTasksCmd()
}

func (m Model) openLeaderboard() (tea.Model, tea.Cmd) {
	ownID := ""
	if m.user != nil {
		ownID = m.user.ID
	}
	m.board = screens.NewLeaderboard(ownID, m.styles)
	m.screen = types.ScreenLeaderboard
	return m, m.loadLeaderboardCmd(domain.ScopeGlobal)
}

// returnFromAux leaves a list screen for wherever the task flow stands
func (m Model) returnFromAux() (tea.Model, tea.Cmd) {
	switch m.lifecycle.Phase() {
	case domain.PhaseAwaitingDecision:
		m.screen = types.ScreenRoast
	case domain.PhaseFocusing:
		m.screen = types.ScreenFocus
	case domain.PhaseResolved:
		m.screen = types.ScreenCompletion
	default:
		m.goHome()
	}
	return m, nil
}

func (m *Model) addToast(level types.ToastLevel, message string, ttl time.Duration) tea.Cmd {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	})
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return toastTick()
}

func (m *Model) errToast(err error) tea.Cmd {
	m.logger.Warn("request failed", "error", err)
	return m.addToast(ToastError, userMessage(err), 6*time.Second)
}

// userMessage extracts the display message from a gateway error
func userMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "La requête a échoué. Réessaie."
}

// serverMessage returns the raw server message, empty when none came
func serverMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// View renders the current screen with the status bar, any overlay and
// the toast stack
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Chargement..."
	}

	var mainView string
	switch {
	case m.bar.Active() && m.screen == types.ScreenCreate:
		mainView = lipgloss.Place(m.width, m.height-1,
			lipgloss.Center, lipgloss.Center, m.bar.View())
	case m.screen == types.ScreenAuth:
		mainView = m.auth.View()
	case m.screen == types.ScreenCreate:
		mainView = m.create.View()
	case m.screen == types.ScreenRoast:
		mainView = m.roast.View()
	case m.screen == types.ScreenFocus:
		mainView = m.focus.View()
	case m.screen == types.ScreenCompletion:
		mainView = m.completion.View()
	case m.screen == types.ScreenMyTasks:
		mainView = m.mytasks.View()
	case m.screen == types.ScreenFeed:
		mainView = m.feed.View()
	case m.screen == types.ScreenLeaderboard:
		mainView = m.board.View()
	}

	sb := statusbar.New(m.screen, m.width, m.styles)
	if m.user != nil {
		sb = sb.WithUser(m.user.UserName, m.user.Points)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, mainView, sb.Render())

	if !m.overlays.IsEmpty() {
		current := m.overlays.Current()
		overlayView := current.View()
		overlayWidth, overlayHeight := current.Size()

		if title := current.Title(); title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		view = lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center, overlayView)
	}

	if len(m.toasts) > 0 {
		toastView := toast.New(m.styles).Render(m.toasts, m.width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}
