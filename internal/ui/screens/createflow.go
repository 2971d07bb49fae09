package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

const (
	descriptionLimit = 120
	excuseLimit      = 80
)

// SubmitDraftMsg asks the app to send the draft to the roaster
type SubmitDraftMsg struct {
	Description string
	Excuse      string
	Type        domain.TaskType
}

// CreateFlow is the task creation screen: what you should do, the
// excuse you made up, and which flavor of roast you want
type CreateFlow struct {
	description textarea.Model
	excuse      textarea.Model
	taskType    domain.TaskType
	focusIndex  int
	pending     bool
	errors      domain.DraftErrors

	styles *styles.Styles
}

const (
	createFocusDescription = iota
	createFocusExcuse
)

// NewCreateFlow creates the task draft screen
func NewCreateFlow(st *styles.Styles) CreateFlow {
	description := textarea.New()
	description.Placeholder = "La tâche que tu repousses..."
	description.CharLimit = descriptionLimit
	description.SetWidth(60)
	description.SetHeight(3)
	description.ShowLineNumbers = false
	description.Focus()

	excuse := textarea.New()
	excuse.Placeholder = "Ta meilleure excuse..."
	excuse.CharLimit = excuseLimit
	excuse.SetWidth(60)
	excuse.SetHeight(2)
	excuse.ShowLineNumbers = false

	return CreateFlow{
		description: description,
		excuse:      excuse,
		taskType:    domain.TypeChallenge,
		styles:      st,
	}
}

// Init starts the cursor blinking
func (c CreateFlow) Init() tea.Cmd {
	return textarea.Blink
}

// Pending reports whether the create request is in flight
func (c CreateFlow) Pending() bool { return c.pending }

// SetPending toggles the in-flight guard
func (c CreateFlow) SetPending(pending bool) CreateFlow {
	c.pending = pending
	return c
}

// Reset clears the form for a fresh draft
func (c CreateFlow) Reset() CreateFlow {
	c.description.Reset()
	c.excuse.Reset()
	c.taskType = domain.TypeChallenge
	c.focusIndex = createFocusDescription
	c.pending = false
	c.errors = domain.DraftErrors{}
	c.description.Focus()
	c.excuse.Blur()
	return c
}

// TaskType returns the currently selected roast flavor
func (c CreateFlow) TaskType() domain.TaskType { return c.taskType }

// Update handles key input
func (c CreateFlow) Update(msg tea.Msg) (CreateFlow, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if c.focusIndex == createFocusDescription {
				c.focusIndex = createFocusExcuse
				c.description.Blur()
				c.excuse.Focus()
			} else {
				c.focusIndex = createFocusDescription
				c.excuse.Blur()
				c.description.Focus()
			}
			return c, nil

		case "ctrl+t":
			if c.taskType == domain.TypeChallenge {
				c.taskType = domain.TypeRoasty
			} else {
				c.taskType = domain.TypeChallenge
			}
			return c, nil

		case "enter":
			return c, c.submit()
		}
	}

	var cmd tea.Cmd
	if c.focusIndex == createFocusDescription {
		c.description, cmd = c.description.Update(msg)
		if c.errors.Description != "" {
			if _, isKey := msg.(tea.KeyMsg); isKey {
				c.errors.Description = ""
			}
		}
	} else {
		c.excuse, cmd = c.excuse.Update(msg)
		if c.errors.Excuse != "" {
			if _, isKey := msg.(tea.KeyMsg); isKey {
				c.errors.Excuse = ""
			}
		}
	}
	return c, cmd
}

func (c *CreateFlow) submit() tea.Cmd {
	if c.pending {
		return nil
	}

	description := strings.TrimSpace(c.description.Value())
	excuse := strings.TrimSpace(c.excuse.Value())

	errs := domain.ValidateDraft(description, excuse)
	if !errs.OK() {
		c.errors = errs
		return nil
	}

	c.pending = true
	c.errors = domain.DraftErrors{}
	taskType := c.taskType
	return func() tea.Msg {
		return SubmitDraftMsg{Description: description, Excuse: excuse, Type: taskType}
	}
}

func (c CreateFlow) charCounter(used, limit int) string {
	counter := fmt.Sprintf("%d/%d", used, limit)
	if used >= limit {
		return c.styles.CharCountMax.Render(counter)
	}
	return c.styles.CharCount.Render(counter)
}

func typeHelp(t domain.TaskType) string {
	if t == domain.TypeChallenge {
		return "Challenge : roast + plan d'action + timer. Tu vas devoir la faire."
	}
	return "Roasty : juste le roast, pour rigoler. Aucun engagement."
}

// View renders the form
func (c CreateFlow) View() string {
	var b strings.Builder

	b.WriteString(c.styles.ScreenTitle.Render("Nouvelle tâche"))
	b.WriteString("\n\n")

	b.WriteString(c.styles.Label.Render("C'était quoi le plan ?"))
	b.WriteString("  ")
	b.WriteString(c.charCounter(len([]rune(c.description.Value())), descriptionLimit))
	b.WriteString("\n")
	b.WriteString(c.description.View())
	b.WriteString("\n")
	if c.errors.Description != "" {
		b.WriteString(c.styles.FieldError.Render(c.errors.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(c.styles.Label.Render("Et ton excuse ?"))
	b.WriteString("  ")
	b.WriteString(c.charCounter(len([]rune(c.excuse.Value())), excuseLimit))
	b.WriteString("\n")
	b.WriteString(c.excuse.View())
	b.WriteString("\n")
	if c.errors.Excuse != "" {
		b.WriteString(c.styles.FieldError.Render(c.errors.Excuse))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	challenge := c.styles.Toggle.Render("Challenge")
	roasty := c.styles.Toggle.Render("Roasty")
	if c.taskType == domain.TypeChallenge {
		challenge = c.styles.ToggleActive.Render("Challenge")
	} else {
		roasty = c.styles.ToggleActive.Render("Roasty")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, challenge, " ", roasty))
	b.WriteString("\n")
	b.WriteString(c.styles.Hint.Render(typeHelp(c.taskType)))
	b.WriteString("\n\n")

	if c.pending {
		b.WriteString(c.styles.Hint.Render("Envoi en cours..."))
	} else {
		b.WriteString(c.styles.Hint.Render("Entrée: envoyer  Ctrl+T: type  Tab: champ suivant"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
