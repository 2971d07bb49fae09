package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// ToggleVisibilityMsg asks the app to flip a task's public flag
type ToggleVisibilityMsg struct {
	TaskID string
}

// MyTasks is the task history screen
type MyTasks struct {
	tasks   []domain.Task
	cursor  int
	loading bool
	styles  *styles.Styles
}

// NewMyTasks creates the history screen in its loading state
func NewMyTasks(st *styles.Styles) MyTasks {
	return MyTasks{loading: true, styles: st}
}

// SetTasks installs the loaded task list
func (m MyTasks) SetTasks(tasks []domain.Task) MyTasks {
	m.tasks = tasks
	m.loading = false
	if m.cursor >= len(tasks) {
		m.cursor = 0
	}
	return m
}

// SetVisibility applies a confirmed visibility change
func (m MyTasks) SetVisibility(taskID string, public bool) MyTasks {
	for i := range m.tasks {
		if m.tasks[i].ID == taskID {
			m.tasks[i].IsPublic = public
		}
	}
	return m
}

// Update handles key input
func (m MyTasks) Update(msg tea.Msg) (MyTasks, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.tasks) == 0 {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "p":
		taskID := m.tasks[m.cursor].ID
		return m, func() tea.Msg { return ToggleVisibilityMsg{TaskID: taskID} }
	}
	return m, nil
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return "en attente"
	case domain.StatusInProgress:
		return "en cours"
	case domain.StatusCompleted:
		return "terminée"
	case domain.StatusAbandoned:
		return "abandonnée"
	default:
		return string(s)
	}
}

// View renders the task history
func (m MyTasks) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ScreenTitle.Render("Mes tâches"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Hint.Render("Chargement..."))
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Subtitle.Render("Rien ici. Même pas une excuse."))
	default:
		for i, task := range m.tasks {
			card := m.styles.Card
			if i == m.cursor {
				card = m.styles.CardActive
			}

			visibility := "privé"
			if task.IsPublic {
				visibility = "public"
			}

			header := lipgloss.JoinHorizontal(lipgloss.Left,
				m.styles.CardTitle.Render(task.Description),
				"  ",
				m.styles.TaskStatus(task.Status).Render(statusLabel(task.Status)),
			)
			meta := m.styles.CardBody.Render(
				string(task.Type) + " · " + visibility)

			b.WriteString(card.Width(64).Render(header + "\n" + meta))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
