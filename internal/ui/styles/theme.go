package styles

import "github.com/charmbracelet/lipgloss"

// Neon-on-dark palette
var (
	// Base colors
	Base     = lipgloss.Color("#040C1E")
	Surface  = lipgloss.Color("#0D121F")
	Surface1 = lipgloss.Color("#1a2236")
	Muted    = lipgloss.Color("#5b6b8c")
	Subtext  = lipgloss.Color("#8fa3c7")
	Text     = lipgloss.Color("#e6edf7")

	// Accent colors
	Green  = lipgloss.Color("#4AEF8C")
	Cyan   = lipgloss.Color("#40FAEF")
	Blue   = lipgloss.Color("#26f0ff")
	Red    = lipgloss.Color("#FF5252")
	Lime   = lipgloss.Color("#c9ff53")
	Orange = lipgloss.Color("#FFB74D")
	Gold   = lipgloss.Color("#FFD700")
)

// LeagueColors maps league names to their display color.
var LeagueColors = map[string]lipgloss.Color{
	"bronze":   Orange,
	"silver":   Subtext,
	"gold":     Gold,
	"platinum": Cyan,
	"diamond":  Blue,
}
