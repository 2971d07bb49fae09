package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// ChangeBoardScopeMsg asks the app to reload the leaderboard
type ChangeBoardScopeMsg struct {
	Scope domain.FeedScope
}

// fakeNames pads the global board so it never looks deserted
var fakeNames = []string{
	"KingOfNap", "ProCrastinator", "DemainJure", "CanapéMan",
	"NetflixWarrior", "PasAujourdhui", "ZeroEffort", "SlowMo",
	"LaSieste", "MisterDodo", "LazyCat", "ChillBill",
	"NoStress", "ZenMaster", "SleepyHead", "LaterHater",
	"DoItTomorrow", "PauseCafé", "RienFaire", "ModeAvion",
	"BatterieFaible", "EcoEnergy", "StandbyMode", "Lagging",
	"AFK_Champion", "SnoozeButton", "MorningHater", "NightOwl",
	"BedLover", "PajamaParty", "SoftLife", "Tranquille",
	"Pepouze", "Doucement", "PasVite", "CoolRaoul",
	"RelaxMax", "FlemmeOlympique", "GoldMedalNap", "SiesteKing",
	"FatigueChronik", "LowPower", "DimancheEternel", "LundiNon",
	"VendrediOui", "WeekendWarrior", "HolidayMood", "VacancesForever",
	"RetraiteAnticipee", "BornToChill",
}

const boardSize = 50

// PadWithFillers appends mock entries below the real ones until the
// board holds boardSize rows. Friends boards are never padded.
func PadWithFillers(real []domain.LeaderboardEntry, scope domain.FeedScope) []domain.LeaderboardEntry {
	if scope != domain.ScopeGlobal {
		return real
	}

	padded := make([]domain.LeaderboardEntry, 0, boardSize)
	padded = append(padded, real...)
	for i := len(real); i < boardSize; i++ {
		name := fmt.Sprintf("Flemmard_%d", i+1)
		if i < len(fakeNames) {
			name = fakeNames[i]
		}
		points := 2000 - i*30
		if points < 0 {
			points = 0
		}
		padded = append(padded, domain.LeaderboardEntry{
			UserID:   fmt.Sprintf("mock_%d", i),
			Rank:     i + 1,
			Username: name,
			Points:   points,
		})
	}
	return padded
}

// Leaderboard is the ranking screen
type Leaderboard struct {
	tbl     table.Model
	scope   domain.FeedScope
	ownID   string
	loading bool
	styles  *styles.Styles
}

// NewLeaderboard creates the ranking screen in its loading state
func NewLeaderboard(ownID string, st *styles.Styles) Leaderboard {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Joueur", Width: 28},
		{Title: "Points", Width: 8},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Foreground(styles.Cyan).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Surface1).
		BorderBottom(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Base).
		Background(styles.Green).
		Bold(true)
	tbl.SetStyles(ts)

	return Leaderboard{
		tbl:     tbl,
		scope:   domain.ScopeGlobal,
		ownID:   ownID,
		loading: true,
		styles:  st,
	}
}

// Scope returns the active tab
func (l Leaderboard) Scope() domain.FeedScope { return l.scope }

// SetEntries installs a loaded board, padding the global one
func (l Leaderboard) SetEntries(scope domain.FeedScope, entries []domain.LeaderboardEntry) Leaderboard {
	l.scope = scope
	l.loading = false

	rows := make([]table.Row, 0, len(entries))
	for _, e := range PadWithFillers(entries, scope) {
		name := e.Username
		if e.UserID != "" && e.UserID == l.ownID {
			name += " (toi)"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(e.Rank),
			name,
			strconv.Itoa(e.Points),
		})
	}
	l.tbl.SetRows(rows)
	l.tbl.SetCursor(0)
	return l
}

// SetLoading flags a reload in progress
func (l Leaderboard) SetLoading() Leaderboard {
	l.loading = true
	return l
}

// Update handles key input, delegating navigation to the table
func (l Leaderboard) Update(msg tea.Msg) (Leaderboard, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		next := domain.ScopeFriends
		if l.scope == domain.ScopeFriends {
			next = domain.ScopeGlobal
		}
		return l, func() tea.Msg { return ChangeBoardScopeMsg{Scope: next} }
	}

	var cmd tea.Cmd
	l.tbl, cmd = l.tbl.Update(msg)
	return l, cmd
}

func (l Leaderboard) tabs() string {
	global := l.styles.Tab.Render("Global")
	friends := l.styles.Tab.Render("Amis")
	if l.scope == domain.ScopeGlobal {
		global = l.styles.TabActive.Render("Global")
	} else {
		friends = l.styles.TabActive.Render("Amis")
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, global, friends)
}

// View renders the ranking table
func (l Leaderboard) View() string {
	var b strings.Builder

	b.WriteString(l.styles.ScreenTitle.Render("Classement"))
	b.WriteString("\n")
	b.WriteString(l.tabs())
	b.WriteString("\n\n")

	switch {
	case l.loading:
		b.WriteString(l.styles.Hint.Render("Chargement..."))
	case len(l.tbl.Rows()) == 0:
		b.WriteString(l.styles.Subtitle.Render("Aucun classement ici. Invite tes amis à se faire griller."))
	default:
		b.WriteString(l.tbl.View())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
