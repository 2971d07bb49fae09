package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	header  string
	entries []helpEntry
}{
	{
		header: "Partout",
		entries: []helpEntry{
			{"?", "afficher cette aide"},
			{"Esc", "revenir en arrière / fermer"},
			{"Ctrl+D", "se déconnecter"},
			{"Ctrl+C", "quitter"},
		},
	},
	{
		header: "Nouvelle tâche",
		entries: []helpEntry{
			{"Tab", "champ suivant"},
			{"Ctrl+T", "changer le type (challenge / roasty)"},
			{"Entrée", "envoyer au roast"},
			{"Ctrl+F", "voir le feed"},
			{"Ctrl+K", "voir le classement"},
			{"Ctrl+B", "voir mes tâches"},
		},
	},
	{
		header: "Focus",
		entries: []helpEntry{
			{"1-3", "cocher une étape"},
			{"Entrée", "valider la tâche"},
			{"a", "abandonner (avec confirmation)"},
		},
	},
	{
		header: "Feed et classement",
		entries: []helpEntry{
			{"Tab", "global / amis"},
			{"j/k", "naviguer"},
			{"l", "liker un roast"},
		},
	},
}

// HelpOverlay lists the keybindings per screen
type HelpOverlay struct {
	styles *Styles
}

// NewHelpOverlay creates the help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update closes on any of the usual dismiss keys
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?", "enter":
			return h, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}
	return h, nil
}

// View renders the keybinding list
func (h *HelpOverlay) View() string {
	var b strings.Builder

	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h.styles.Title.Render(section.header))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString("  ")
			b.WriteString(h.styles.MenuKey.Render(e.key))
			b.WriteString("  ")
			b.WriteString(h.styles.MenuItem.Render(e.desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(h.styles.Footer.Render("Esc pour fermer"))

	return b.String()
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Aide"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	lines := 2
	for _, s := range helpSections {
		lines += len(s.entries) + 2
	}
	return 56, lines
}
