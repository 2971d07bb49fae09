package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// QuotaDialog is shown when the server refuses a new task because the
// daily quota is spent. It offers a jump to the feed as a consolation.
type QuotaDialog struct {
	message  string
	styles   *Styles
	selected int // 0 = feed, 1 = close
}

// QuotaChoice is the selection emitted by the quota dialog
type QuotaChoice struct {
	GoToFeed bool
}

// NewQuotaDialog creates the daily quota dialog. If message is empty a
// default explanation is used.
func NewQuotaDialog(message string) *QuotaDialog {
	if message == "" {
		message = "T'as déjà cramé ton quota de tâches pour aujourd'hui.\nReviens demain, ou va te moquer des autres en attendant."
	}
	return &QuotaDialog{
		message: message,
		styles:  New(),
	}
}

// Init initializes the dialog
func (q *QuotaDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (q *QuotaDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			return q, q.choose(true)

		case "esc", "q":
			return q, q.choose(false)

		case "enter":
			return q, q.choose(q.selected == 0)

		case "left", "h", "right", "l", "tab":
			q.selected = 1 - q.selected
			return q, nil
		}
	}

	return q, nil
}

func (q *QuotaDialog) choose(feed bool) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{
			Key:   "quota",
			Value: QuotaChoice{GoToFeed: feed},
		}
	}
}

// View renders the dialog
func (q *QuotaDialog) View() string {
	var b strings.Builder

	b.WriteString(q.styles.MenuItem.Render(q.message))
	b.WriteString("\n\n")

	feedStyle := q.styles.MenuItem
	closeStyle := q.styles.MenuItem
	if q.selected == 0 {
		feedStyle = q.styles.MenuItemActive
	} else {
		closeStyle = q.styles.MenuItemActive
	}

	b.WriteString(feedStyle.Render("[F] Voir le feed"))
	b.WriteString("    ")
	b.WriteString(closeStyle.Render("[Esc] Fermer"))
	b.WriteString("\n")

	footer := q.styles.Footer.Render("← → / Tab: choisir • Entrée: confirmer")
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

// Title returns the dialog title
func (q *QuotaDialog) Title() string {
	return "Quota atteint"
}

// Size returns the dialog dimensions
func (q *QuotaDialog) Size() (width, height int) {
	messageLines := len(strings.Split(q.message, "\n"))
	return 64, messageLines + 6
}
