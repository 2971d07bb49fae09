package countdown

import (
	"strings"
	"testing"

	"github.com/mbriard/roastcli/internal/ui/styles"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{65, "1:05"},
		{9, "0:09"},
		{0, "0:00"},
		{600, "10:00"},
		{59, "0:59"},
		{3661, "61:01"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		total     int
		want      Stage
	}{
		{"full time", 1500, 1500, StageCalm},
		{"just over half", 751, 1500, StageCalm},
		{"exactly half", 750, 1500, StageWarning},
		{"just over a fifth", 301, 1500, StageWarning},
		{"a fifth", 300, 1500, StageCritical},
		{"nearly out", 10, 1500, StageCritical},
		{"zero", 0, 1500, StageCritical},
		{"degenerate total", 0, 0, StageCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StageFor(tt.remaining, tt.total); got != tt.want {
				t.Errorf("StageFor(%d, %d) = %v, want %v", tt.remaining, tt.total, got, tt.want)
			}
		})
	}
}

func TestModel_RemainingAndView(t *testing.T) {
	m := New(1500, 1500, styles.New())

	if got := m.Remaining(); got != 1500 {
		t.Errorf("Remaining() = %d, want 1500", got)
	}
	if m.Finished() {
		t.Error("fresh countdown should not be finished")
	}
	if view := m.View(); !strings.Contains(view, "25:00") {
		t.Errorf("View() = %q, want it to contain 25:00", view)
	}
}

func TestModel_ResumedPartway(t *testing.T) {
	// a task resumed with 65 seconds left renders 1:05 in the red stage
	m := New(65, 1500, styles.New())

	if got := m.Remaining(); got != 65 {
		t.Errorf("Remaining() = %d, want 65", got)
	}
	if got := m.Stage(); got != StageCritical {
		t.Errorf("Stage() = %v, want StageCritical", got)
	}
	if view := m.View(); !strings.Contains(view, "1:05") {
		t.Errorf("View() = %q, want it to contain 1:05", view)
	}
}
