package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbriard/roastcli/internal/ui/styles"
)

func focusScreen() Focus {
	f := NewFocus(challengeTask(), 1500, styles.New())
	return f.SetSteps([]StepView{
		{Label: "Ouvre ton logiciel"},
		{Label: "Trie les factures"},
		{Label: "Valide le bilan", Locked: true},
	}, false)
}

func TestFocus_ToggleStepKeys(t *testing.T) {
	f := focusScreen()

	for key, want := range map[string]int{"1": 0, "2": 1, "3": 2} {
		_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		require.NotNil(t, cmd)
		msg, ok := cmd().(ToggleStepMsg)
		require.True(t, ok)
		assert.Equal(t, want, msg.Index)
	}
}

func TestFocus_ToggleClearsNotice(t *testing.T) {
	f := focusScreen().SetNotice("Termine le timer avant la dernière étape.")
	require.Contains(t, f.View(), "Termine le timer")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})

	assert.NotContains(t, f.View(), "Termine le timer")
}

func TestFocus_ValidateOnlyWhenAllowed(t *testing.T) {
	f := focusScreen()

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "validate hidden until every step is checked")

	f = f.SetSteps([]StepView{
		{Label: "a", Checked: true},
		{Label: "b", Checked: true},
		{Label: "c", Checked: true},
	}, true)

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(ValidateTaskMsg)
	assert.True(t, ok)
}

func TestFocus_GiveUpRequestsConfirm(t *testing.T) {
	f := focusScreen()

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	require.NotNil(t, cmd)
	_, ok := cmd().(RequestGiveUpMsg)
	assert.True(t, ok)
}

func TestFocus_PendingBlocksActions(t *testing.T) {
	f := focusScreen().SetPending(true)
	f = f.SetSteps([]StepView{
		{Label: "a", Checked: true},
		{Label: "b", Checked: true},
		{Label: "c", Checked: true},
	}, true)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Nil(t, cmd)
}

func TestFocus_ViewShowsLockAndClock(t *testing.T) {
	f := focusScreen()

	view := f.View()

	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "🔒")
	assert.Contains(t, view, "Faire ma comptabilité en retard")
}
