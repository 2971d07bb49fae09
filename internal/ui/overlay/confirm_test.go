package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectionFrom(t *testing.T, cmd tea.Cmd) SelectionMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	msg, ok := cmd().(SelectionMsg)
	if !ok {
		t.Fatalf("Expected SelectionMsg, got %T", cmd())
	}
	return msg
}

func TestConfirmDialog_YesKey(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "Tu vas perdre des points.")

	_, cmd := dialog.Update(keyMsg("o"))

	msg := selectionFrom(t, cmd)
	result, ok := msg.Value.(ConfirmResult)
	if !ok || !result.Confirmed {
		t.Errorf("Expected confirmed result, got %v", msg.Value)
	}
}

func TestConfirmDialog_NoKey(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "Tu vas perdre des points.")

	_, cmd := dialog.Update(keyMsg("n"))

	msg := selectionFrom(t, cmd)
	result, ok := msg.Value.(ConfirmResult)
	if !ok || result.Confirmed {
		t.Errorf("Expected not confirmed, got %v", msg.Value)
	}
}

func TestConfirmDialog_EscCancels(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEsc})

	msg := selectionFrom(t, cmd)
	if msg.Value.(ConfirmResult).Confirmed {
		t.Error("Esc should cancel")
	}
}

func TestConfirmDialog_EnterFollowsSelection(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "")

	// default selection is Non
	model, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if selectionFrom(t, cmd).Value.(ConfirmResult).Confirmed {
		t.Error("Default selection should be Non")
	}

	// move to Oui then confirm
	dialog = model.(*ConfirmDialog)
	model, _ = dialog.Update(tea.KeyMsg{Type: tea.KeyTab})
	dialog = model.(*ConfirmDialog)
	_, cmd = dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !selectionFrom(t, cmd).Value.(ConfirmResult).Confirmed {
		t.Error("Enter after Tab should confirm")
	}
}

func TestConfirmDialog_View(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "Tu vas perdre des points.")

	view := dialog.View()

	if !strings.Contains(view, "Tu vas perdre des points.") {
		t.Error("View should contain the message")
	}
	if !strings.Contains(view, "Oui") || !strings.Contains(view, "Non") {
		t.Error("View should contain both choices")
	}
}

func TestConfirmDialog_TitleAndSize(t *testing.T) {
	dialog := NewConfirmDialog("Abandonner ?", "ligne 1\nligne 2")

	if dialog.Title() != "Abandonner ?" {
		t.Errorf("Title() = %q", dialog.Title())
	}

	w, h := dialog.Size()
	if w != 60 || h != 8 {
		t.Errorf("Size() = (%d, %d), want (60, 8)", w, h)
	}
}
