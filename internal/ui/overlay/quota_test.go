package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestQuotaDialog_FeedKey(t *testing.T) {
	dialog := NewQuotaDialog("")

	_, cmd := dialog.Update(keyMsg("f"))

	msg := selectionFrom(t, cmd)
	choice, ok := msg.Value.(QuotaChoice)
	if !ok || !choice.GoToFeed {
		t.Errorf("Expected feed choice, got %v", msg.Value)
	}
}

func TestQuotaDialog_EscCloses(t *testing.T) {
	dialog := NewQuotaDialog("")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEsc})

	msg := selectionFrom(t, cmd)
	if msg.Value.(QuotaChoice).GoToFeed {
		t.Error("Esc should not pick the feed")
	}
}

func TestQuotaDialog_EnterFollowsSelection(t *testing.T) {
	dialog := NewQuotaDialog("")

	// default selection is the feed button
	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !selectionFrom(t, cmd).Value.(QuotaChoice).GoToFeed {
		t.Error("Default selection should be the feed")
	}

	model, _ := dialog.Update(tea.KeyMsg{Type: tea.KeyTab})
	dialog = model.(*QuotaDialog)
	_, cmd = dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if selectionFrom(t, cmd).Value.(QuotaChoice).GoToFeed {
		t.Error("Enter after Tab should close instead")
	}
}

func TestQuotaDialog_ServerMessageShown(t *testing.T) {
	dialog := NewQuotaDialog("Limite quotidienne atteinte")

	view := dialog.View()

	if !strings.Contains(view, "Limite quotidienne atteinte") {
		t.Error("View should show the server message")
	}
}

func TestQuotaDialog_DefaultMessage(t *testing.T) {
	dialog := NewQuotaDialog("")

	if !strings.Contains(dialog.View(), "quota") {
		t.Error("Default message should mention the quota")
	}
	if dialog.Title() != "Quota atteint" {
		t.Errorf("Title() = %q", dialog.Title())
	}
}
