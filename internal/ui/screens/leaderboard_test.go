package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

func TestPadWithFillers_Global(t *testing.T) {
	real := []domain.LeaderboardEntry{
		{UserID: "u1", Rank: 1, Username: "marine", Points: 320},
		{UserID: "u2", Rank: 2, Username: "paul", Points: 150},
	}

	padded := PadWithFillers(real, domain.ScopeGlobal)

	require.Len(t, padded, 50)
	assert.Equal(t, "marine", padded[0].Username)
	assert.Equal(t, "paul", padded[1].Username)

	// fillers continue the ranking below the real rows
	assert.Equal(t, 3, padded[2].Rank)
	assert.Equal(t, "mock_2", padded[2].UserID)
	assert.Equal(t, 50, padded[49].Rank)

	// filler points decay and never go negative
	for _, e := range padded[2:] {
		assert.GreaterOrEqual(t, e.Points, 0)
	}
}

func TestPadWithFillers_FriendsNotPadded(t *testing.T) {
	real := []domain.LeaderboardEntry{
		{UserID: "u1", Rank: 1, Username: "marine", Points: 320},
	}

	padded := PadWithFillers(real, domain.ScopeFriends)

	assert.Len(t, padded, 1)
}

func TestPadWithFillers_EmptyGlobal(t *testing.T) {
	padded := PadWithFillers(nil, domain.ScopeGlobal)

	require.Len(t, padded, 50)
	assert.Equal(t, "KingOfNap", padded[0].Username)
	assert.Equal(t, 2000, padded[0].Points)
	assert.Equal(t, 1, padded[0].Rank)
}

func TestLeaderboard_OwnRowMarked(t *testing.T) {
	board := NewLeaderboard("u1", styles.New())

	board = board.SetEntries(domain.ScopeGlobal, []domain.LeaderboardEntry{
		{UserID: "u1", Rank: 1, Username: "marine", Points: 320},
	})

	assert.Contains(t, board.View(), "marine (toi)")
}

func TestLeaderboard_TabSwitchRequestsReload(t *testing.T) {
	board := NewLeaderboard("u1", styles.New())

	_, cmd := board.Update(tea.KeyMsg{Type: tea.KeyTab})

	require.NotNil(t, cmd)
	msg, ok := cmd().(ChangeBoardScopeMsg)
	require.True(t, ok)
	assert.Equal(t, domain.ScopeFriends, msg.Scope)
}

func TestLeaderboard_FriendsEmptyState(t *testing.T) {
	board := NewLeaderboard("u1", styles.New())

	board = board.SetEntries(domain.ScopeFriends, nil)

	assert.Contains(t, board.View(), "Aucun classement ici.")
}
