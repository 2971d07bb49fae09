package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/ui/styles"
)

// Stage buckets the remaining time for display purposes
type Stage int

const (
	StageCalm Stage = iota
	StageWarning
	StageCritical
)

// Model wraps a one-second timer with the clock face and color stages
// used on the focus screen
type Model struct {
	timer  timer.Model
	total  int
	styles *styles.Styles
}

// New creates a countdown with remaining seconds left out of total.
// For a fresh task the two are equal; a resumed task starts partway.
func New(remaining, total int, st *styles.Styles) Model {
	return Model{
		timer:  timer.NewWithInterval(time.Duration(remaining)*time.Second, time.Second),
		total:  total,
		styles: st,
	}
}

// Init starts the timer ticking
func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// Update forwards timer messages. The parent watches for
// timer.TimeoutMsg to learn the countdown finished.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

// Remaining returns the seconds left, never negative
func (m Model) Remaining() int {
	s := int(m.timer.Timeout / time.Second)
	if s < 0 {
		return 0
	}
	return s
}

// Finished reports whether the countdown has reached zero
func (m Model) Finished() bool {
	return m.timer.Timedout()
}

// Stage returns the color stage for the current remaining time.
// Green for the first half, amber for the middle, red near the end.
func (m Model) Stage() Stage {
	return StageFor(m.Remaining(), m.total)
}

// StageFor buckets remaining seconds against the total duration
func StageFor(remaining, total int) Stage {
	if total <= 0 {
		return StageCritical
	}
	frac := float64(remaining) / float64(total)
	switch {
	case frac > 0.5:
		return StageCalm
	case frac > 0.2:
		return StageWarning
	default:
		return StageCritical
	}
}

// FormatClock renders seconds as M:SS. Minutes are not zero padded,
// so 1500 seconds reads "25:00" and 65 reads "1:05".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// View renders the clock in the style matching the current stage
func (m Model) View() string {
	var style lipgloss.Style
	switch m.Stage() {
	case StageCalm:
		style = m.styles.TimerCalm
	case StageWarning:
		style = m.styles.TimerWarning
	default:
		style = m.styles.TimerCritical
	}
	return style.Render(FormatClock(m.Remaining()))
}
