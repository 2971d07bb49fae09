package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// Completion is the resolution screen shown after a task ends
type Completion struct {
	task    domain.Task
	outcome domain.Outcome
	points  int
	levelUp bool
	styles  *styles.Styles
}

// NewCompletion creates the resolution screen
func NewCompletion(task domain.Task, outcome domain.Outcome, points int, levelUp bool, st *styles.Styles) Completion {
	return Completion{
		task:    task,
		outcome: outcome,
		points:  points,
		levelUp: levelUp,
		styles:  st,
	}
}

// View renders the outcome, the points and the level-up callout
func (c Completion) View() string {
	var b strings.Builder

	if c.outcome == domain.OutcomeCompleted {
		b.WriteString(c.styles.ScreenTitle.Render("Tâche terminée !"))
		b.WriteString("\n")
		b.WriteString(c.styles.Subtitle.Render("Comme quoi, quand tu veux."))
	} else {
		b.WriteString(c.styles.FieldError.Render("Tâche abandonnée."))
		b.WriteString("\n")
		b.WriteString(c.styles.Subtitle.Render("L'excuse a gagné cette fois."))
	}
	b.WriteString("\n\n")

	b.WriteString(c.styles.CardTitle.Render(c.task.Description))
	b.WriteString("\n\n")

	var points string
	if c.points >= 0 {
		points = fmt.Sprintf("+%d points", c.points)
	} else {
		points = fmt.Sprintf("%d points", c.points)
	}
	b.WriteString(c.styles.Points.Render(points))
	b.WriteString("\n")

	if c.levelUp {
		b.WriteString("\n")
		b.WriteString(c.styles.LeagueBadge("gold").Render("LIGUE SUPÉRIEURE !"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(c.styles.Hint.Render("Entrée: nouvelle tâche  f: feed  c: classement"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
