package statusbar

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbriard/roastcli/internal/types"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	screen types.Screen
	user   string
	points int
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the given screen
func New(screen types.Screen, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		screen: screen,
		width:  width,
		styles: styles,
	}
}

// WithUser attaches the signed-in user's name and points to the bar
func (sb StatusBar) WithUser(name string, points int) StatusBar {
	sb.user = name
	sb.points = points
	return sb
}

// Render renders the status bar as a string. The identity segment has
// priority over the hints: hints are truncated to whatever room is left.
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.screen.String() + " ")

	var info string
	if sb.user != "" {
		info = sb.styles.StatusInfo.Render(sb.user + "  ⚡" + strconv.Itoa(sb.points))
	}

	avail := sb.width - lipgloss.Width(badge) - 2
	if info != "" {
		avail -= lipgloss.Width(info) + 2
	}

	content := badge
	if hints := GetHints(sb.screen); hints != "" && avail > 4 {
		separator := sb.styles.StatusHint.Render(" │ ")
		hints = truncate(hints, avail-lipgloss.Width(separator))
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator,
			sb.styles.StatusHint.Render(hints))
	}

	if info != "" {
		gap := sb.width - lipgloss.Width(content) - lipgloss.Width(info) - 2
		if gap < 1 {
			gap = 1
		}
		content = lipgloss.JoinHorizontal(lipgloss.Left, content,
			lipgloss.NewStyle().Width(gap).Render(""), info)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

// truncate cuts s to max display cells, ending with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
