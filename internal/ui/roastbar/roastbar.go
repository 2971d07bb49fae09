package roastbar

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/ui/styles"
)

const tickInterval = 800 * time.Millisecond

// Message pools shown while the bar pretends to work.
var backwardMessages = []string{
	"Attends... j'ai oublié un truc.",
	"Oups, j'ai mal compté là.",
	"On peut revenir en arrière ? Trop tard. Ah bah si.",
	"Minute papillon, on recommence un bout.",
	"Je refais les calculs, bouge pas.",
}

var forwardMessages = []string{
	"Ok, on avance là. Enfin !",
	"Pas mal, tu te réveilles.",
	"On y est presque... enfin, presque presque.",
	"Je sens que tu transpires de productivité.",
	"Continue, surprends-moi.",
}

var nearEndMessages = []string{
	"Dernière ligne droite, pas de panique.",
	"Ne gâche pas tout maintenant.",
	"Encore un effort, après tu peux scroller TikTok",
	"On voit la lumière au bout du tunnel.",
}

var endMessages = []string{
	"Attends t'as vraiment cru que je réfléchissait ?",
	"Oh mais attends un peu j'ai pas finis !!",
	"Attends encore je réfléchis un peu...",
	"On est bien entre nous là hein ?",
}

// TickMsg advances the simulated progress. The generation tag keeps
// ticks from a previous activation from driving the current one.
type TickMsg struct {
	Gen int
}

// FinishedMsg is emitted exactly once when the bar reaches 100
type FinishedMsg struct{}

// Model is a fake progress bar that wanders toward 100 while the server
// does the real work. It bears no relation to actual request progress.
type Model struct {
	bar      progress.Model
	current  float64
	message  string
	label    string
	active   bool
	finished bool
	gen      int
	rng      func() float64
	styles   *styles.Styles
}

// New creates an inactive progress bar with the default label
func New(st *styles.Styles) Model {
	return Model{
		bar: progress.New(
			progress.WithScaledGradient("#3BFF9C", "#40FAEF"),
			progress.WithoutPercentage(),
		),
		label:  "Chargement de ta motivation...",
		rng:    rand.Float64,
		styles: st,
	}
}

// WithRand replaces the random source, for deterministic tests
func (m Model) WithRand(rng func() float64) Model {
	m.rng = rng
	return m
}

// WithLabel overrides the label shown above the bar
func (m Model) WithLabel(label string) Model {
	m.label = label
	return m
}

// Activate resets the bar to zero and starts ticking
func (m Model) Activate() (Model, tea.Cmd) {
	m.active = true
	m.finished = false
	m.current = 0
	m.message = ""
	m.gen++
	return m, m.tick()
}

// Deactivate stops and resets the bar immediately
func (m Model) Deactivate() Model {
	m.active = false
	m.finished = false
	m.current = 0
	m.message = ""
	m.gen++
	return m
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// Update handles tick messages and advances the simulation
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.Gen != m.gen || !m.active {
		return m, nil
	}
	if m.finished {
		// 100 is absorbing, keep showing the final message
		return m, nil
	}

	next, message, done := step(m.current, m.rng)
	m.current = next
	if message != "" {
		m.message = message
	}
	if done {
		m.finished = true
		return m, func() tea.Msg { return FinishedMsg{} }
	}
	return m, m.tick()
}

// step computes one advance of the simulation. About 15% of ticks move
// backward, but only once past 20 so the bar never stalls near zero.
func step(current float64, rng func() float64) (next float64, message string, done bool) {
	random := rng()

	if random < 0.15 && current > 20 {
		backwardStep := 10 + rng()*25
		next = math.Max(0, current-backwardStep)
		message = backwardMessages[int(rng()*float64(len(backwardMessages)))]
	} else {
		forwardStep := 5 + rng()*15
		next = math.Min(100, current+forwardStep)

		if next > 80 {
			message = nearEndMessages[int(rng()*float64(len(nearEndMessages)))]
		} else if random > 0.6 {
			message = forwardMessages[int(rng()*float64(len(forwardMessages)))]
		}
	}

	if next >= 100 {
		message = endMessages[int(rng()*float64(len(endMessages)))]
		return 100, message, true
	}
	return next, message, false
}

// Active reports whether the simulation is running or holding at 100
func (m Model) Active() bool { return m.active }

// Finished reports whether the bar has reached 100
func (m Model) Finished() bool { return m.finished }

// Percent returns the current progress, 0 to 100
func (m Model) Percent() float64 { return m.current }

// Message returns the narrative line currently displayed
func (m Model) Message() string { return m.message }

// View renders the label, the bar, the rounded percentage and the
// current narrative message
func (m Model) View() string {
	if !m.active {
		return ""
	}

	lines := []string{
		m.styles.Subtitle.Render(m.label),
		m.bar.ViewAs(m.current / 100),
		m.styles.Hint.Render(fmt.Sprintf("%d%%", int(math.Round(m.current)))),
	}
	if m.message != "" {
		lines = append(lines, m.styles.RoastText.Render(m.message))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
