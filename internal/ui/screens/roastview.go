package screens

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// StartFocusMsg asks the app to start the focus session for the task
type StartFocusMsg struct {
	TaskID string
}

// The server numbers plan steps itself; we render our own numbering
var stepPrefix = regexp.MustCompile(`^\s*[ÉEé]tape\s*\d+\s*:?\s*`)

// StripStepPrefix removes a leading "Étape N :" from a plan step
func StripStepPrefix(step string) string {
	return stepPrefix.ReplaceAllString(step, "")
}

// RoastView shows the roast the server produced, and for challenges the
// action plan plus the start affordance
type RoastView struct {
	task    domain.Task
	pending bool
	styles  *styles.Styles
}

// NewRoastView creates the roast result screen for a task
func NewRoastView(task domain.Task, st *styles.Styles) RoastView {
	return RoastView{task: task, styles: st}
}

// Init implements the screen contract
func (r RoastView) Init() tea.Cmd {
	return nil
}

// Task returns the task being shown
func (r RoastView) Task() domain.Task { return r.task }

// SetPending toggles the in-flight guard on the start action
func (r RoastView) SetPending(pending bool) RoastView {
	r.pending = pending
	return r
}

// Update handles key input
func (r RoastView) Update(msg tea.Msg) (RoastView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	if key.String() == "enter" && r.task.Type.Focusable() && !r.pending {
		r.pending = true
		taskID := r.task.ID
		return r, func() tea.Msg {
			return StartFocusMsg{TaskID: taskID}
		}
	}

	return r, nil
}

// View renders the roast and, for challenges, the plan
func (r RoastView) View() string {
	var b strings.Builder

	b.WriteString(r.styles.ScreenTitle.Render("Le verdict"))
	b.WriteString("\n\n")

	b.WriteString(r.styles.CardTitle.Render(r.task.Description))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render("« " + r.task.Excuse + " »"))
	b.WriteString("\n\n")

	roast := r.styles.RoastText.Width(64).Render(r.task.RoastContent)
	b.WriteString(r.styles.Card.Render(roast))
	b.WriteString("\n")

	if r.task.Type.Focusable() && r.task.HasActionPlan() {
		b.WriteString(r.styles.Label.Render("Le plan"))
		b.WriteString("\n")
		for i, step := range r.task.ActionPlan {
			line := fmt.Sprintf("%d. %s", i+1, StripStepPrefix(step))
			b.WriteString(r.styles.PlanStep.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(r.styles.Hint.Render(
			fmt.Sprintf("Timer : %s", formatMinutes(r.task.Duration()))))
		b.WriteString("\n\n")
		if r.pending {
			b.WriteString(r.styles.Hint.Render("Lancement..."))
		} else {
			b.WriteString(r.styles.Hint.Render("Entrée: lancer le focus  Esc: retour"))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(r.styles.Hint.Render("C'était juste pour rire. Esc: retour"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func formatMinutes(seconds int) string {
	return fmt.Sprintf("%d min", seconds/60)
}
