package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mbriard/roastcli/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Screens
	Screen      lipgloss.Style
	ScreenTitle lipgloss.Style
	Subtitle    lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	CardBody   lipgloss.Style

	// Forms
	Label        lipgloss.Style
	FieldError   lipgloss.Style
	Hint         lipgloss.Style
	CharCount    lipgloss.Style
	CharCountMax lipgloss.Style

	// Toggle buttons
	Toggle       lipgloss.Style
	ToggleActive lipgloss.Style

	// Roast result
	RoastText       lipgloss.Style
	PlanStep        lipgloss.Style
	PlanStepChecked lipgloss.Style
	PlanStepLocked  lipgloss.Style

	// Countdown
	TimerCalm     lipgloss.Style
	TimerWarning  lipgloss.Style
	TimerCritical lipgloss.Style

	// Points and leagues
	Points      lipgloss.Style
	LeagueBadge func(league string) lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Task statuses
	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusAbandoned  lipgloss.Style
}

// New creates a new Styles instance with the neon theme
func New() *Styles {
	return &Styles{
		Screen: lipgloss.NewStyle().
			Padding(1, 2),

		ScreenTitle: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Subtext),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Padding(0, 1).
			MarginBottom(1),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		CardBody: lipgloss.NewStyle().
			Foreground(Subtext),

		Label: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(Red),

		Hint: lipgloss.NewStyle().
			Foreground(Muted),

		CharCount: lipgloss.NewStyle().
			Foreground(Muted),

		CharCountMax: lipgloss.NewStyle().
			Foreground(Red),

		Toggle: lipgloss.NewStyle().
			Foreground(Subtext).
			Background(Surface).
			Padding(0, 2),

		ToggleActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Green).
			Bold(true).
			Padding(0, 2),

		RoastText: lipgloss.NewStyle().
			Foreground(Lime).
			Italic(true),

		PlanStep: lipgloss.NewStyle().
			Foreground(Text),

		PlanStepChecked: lipgloss.NewStyle().
			Foreground(Green).
			Strikethrough(true),

		PlanStepLocked: lipgloss.NewStyle().
			Foreground(Muted),

		TimerCalm: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		TimerWarning: lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true),

		TimerCritical: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Points: lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true),

		LeagueBadge: func(league string) lipgloss.Style {
			color, ok := LeagueColors[league]
			if !ok {
				color = Subtext
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		Tab: lipgloss.NewStyle().
			Foreground(Subtext).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		StatusBar: lipgloss.NewStyle().
			Background(Surface).
			Foreground(Subtext).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Green).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Muted),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Muted),

		MenuKey: lipgloss.NewStyle().
			Foreground(Lime).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Orange).
			Foreground(Orange).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		StatusPending: lipgloss.NewStyle().
			Foreground(Orange),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Cyan),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Green),

		StatusAbandoned: lipgloss.NewStyle().
			Foreground(Red),
	}
}

// TaskStatus returns the appropriate style for a task status
func (s *Styles) TaskStatus(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	case domain.StatusAbandoned:
		return s.StatusAbandoned
	default:
		return s.StatusPending
	}
}
