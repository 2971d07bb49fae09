package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/countdown"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// ToggleStepMsg asks the app to toggle a plan step
type ToggleStepMsg struct {
	Index int
}

// ValidateTaskMsg asks the app to complete the focused task
type ValidateTaskMsg struct{}

// RequestGiveUpMsg asks the app to open the give-up confirmation
type RequestGiveUpMsg struct{}

// StepView is the display state of one plan step
type StepView struct {
	Label   string
	Checked bool
	Locked  bool
}

// Focus is the focus session screen: the countdown, the plan steps and
// the validate / give up actions
type Focus struct {
	task        domain.Task
	clock       countdown.Model
	steps       []StepView
	canValidate bool
	notice      string
	pending     bool

	styles *styles.Styles
}

// NewFocus creates the focus screen with the countdown already sized to
// the task's remaining time
func NewFocus(task domain.Task, remaining int, st *styles.Styles) Focus {
	return Focus{
		task:   task,
		clock:  countdown.New(remaining, task.Duration(), st),
		styles: st,
	}
}

// Init starts the countdown
func (f Focus) Init() tea.Cmd {
	return f.clock.Init()
}

// Task returns the task in focus
func (f Focus) Task() domain.Task { return f.task }

// TimerFinished reports whether the countdown hit zero
func (f Focus) TimerFinished() bool { return f.clock.Finished() }

// SetSteps replaces the step display state
func (f Focus) SetSteps(steps []StepView, canValidate bool) Focus {
	f.steps = steps
	f.canValidate = canValidate
	return f
}

// SetNotice shows a blocking notice under the steps
func (f Focus) SetNotice(notice string) Focus {
	f.notice = notice
	return f
}

// SetPending toggles the in-flight guard on validate / give up
func (f Focus) SetPending(pending bool) Focus {
	f.pending = pending
	return f
}

// Update handles countdown ticks and key input
func (f Focus) Update(msg tea.Msg) (Focus, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "1", "2", "3":
			index := int(key.String()[0] - '1')
			f.notice = ""
			return f, func() tea.Msg { return ToggleStepMsg{Index: index} }

		case "enter":
			if f.canValidate && !f.pending {
				return f, func() tea.Msg { return ValidateTaskMsg{} }
			}
			return f, nil

		case "a":
			if !f.pending {
				return f, func() tea.Msg { return RequestGiveUpMsg{} }
			}
			return f, nil
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.clock, cmd = f.clock.Update(msg)
	return f, cmd
}

// View renders the countdown and the plan
func (f Focus) View() string {
	var b strings.Builder

	b.WriteString(f.styles.ScreenTitle.Render("Focus"))
	b.WriteString("\n")
	b.WriteString(f.styles.CardTitle.Render(f.task.Description))
	b.WriteString("\n\n")

	clock := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Surface1).
		Padding(1, 4).
		Render(f.clock.View())
	b.WriteString(clock)
	b.WriteString("\n\n")

	for i, step := range f.steps {
		var line string
		switch {
		case step.Locked:
			line = f.styles.PlanStepLocked.Render(
				fmt.Sprintf("[🔒] %d. %s", i+1, step.Label))
		case step.Checked:
			line = f.styles.PlanStepChecked.Render(
				fmt.Sprintf("[x] %d. %s", i+1, step.Label))
		default:
			line = f.styles.PlanStep.Render(
				fmt.Sprintf("[ ] %d. %s", i+1, step.Label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if f.notice != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.FieldError.Render(f.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.pending:
		b.WriteString(f.styles.Hint.Render("Envoi en cours..."))
	case f.canValidate:
		b.WriteString(f.styles.Hint.Render("Entrée: valider la tâche  a: abandonner"))
	default:
		b.WriteString(f.styles.Hint.Render("1-3: cocher les étapes  a: abandonner"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
