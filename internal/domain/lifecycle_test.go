package domain

import (
	"errors"
	"testing"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name        string
		description string
		excuse      string
		wantDescErr bool
		wantExcErr  bool
	}{
		{"both valid", "Faire ma comptabilité en retard", "J'ai la flemme et il fait beau", false, false},
		{"description too short", "trop", "une excuse valable", true, false},
		{"excuse too short", "une description valable", "non", false, true},
		{"both too short", "nope", "non", true, true},
		{"whitespace does not count", "          padded     ", "     x    ", true, true},
		{"exact boundaries pass", "dix carac.", "cinq!", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateDraft(tt.description, tt.excuse)
			if (errs.Description != "") != tt.wantDescErr {
				t.Errorf("description error = %q, want error: %v", errs.Description, tt.wantDescErr)
			}
			if (errs.Excuse != "") != tt.wantExcErr {
				t.Errorf("excuse error = %q, want error: %v", errs.Excuse, tt.wantExcErr)
			}
			if errs.OK() != (!tt.wantDescErr && !tt.wantExcErr) {
				t.Errorf("OK() = %v inconsistent with field errors", errs.OK())
			}
		})
	}
}

func challengeTask() Task {
	return Task{
		ID:           "t-1",
		Description:  "Faire ma comptabilité en retard",
		Excuse:       "J'ai la flemme et il fait beau",
		Type:         TypeChallenge,
		Status:       StatusPending,
		RoastContent: "Ton bilan est aussi vide que ta motivation.",
		ActionPlan:   []string{"Étape 1 : ouvrir le classeur", "Étape 2 : trier les factures", "Étape 3 : tout saisir"},
	}
}

func focusingLifecycle(t *testing.T) *Lifecycle {
	t.Helper()
	l := NewLifecycle()
	if _, err := l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := l.Created(challengeTask()); err != nil {
		t.Fatalf("Created: %v", err)
	}
	if err := l.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	return l
}

func TestLifecycle_SubmitValidation(t *testing.T) {
	l := NewLifecycle()

	errs, err := l.Submit("nope", "non")
	if !errors.Is(err, ErrInvalidDraft) {
		t.Fatalf("expected ErrInvalidDraft, got %v", err)
	}
	if errs.Description == "" || errs.Excuse == "" {
		t.Error("expected both field errors to fire")
	}
	if l.Phase() != PhaseDrafting {
		t.Errorf("phase = %v, want Drafting after failed validation", l.Phase())
	}
}

func TestLifecycle_SubmitGuardsDuplicates(t *testing.T) {
	l := NewLifecycle()

	if _, err := l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if l.Phase() != PhaseSubmitting {
		t.Fatalf("phase = %v, want Submitting", l.Phase())
	}

	if _, err := l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau"); !errors.Is(err, ErrSubmitPending) {
		t.Errorf("second submit: expected ErrSubmitPending, got %v", err)
	}
}

func TestLifecycle_CreatedHoldsReturnedTask(t *testing.T) {
	l := NewLifecycle()
	l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau")

	if err := l.Created(challengeTask()); err != nil {
		t.Fatalf("Created: %v", err)
	}
	if l.Phase() != PhaseAwaitingDecision {
		t.Errorf("phase = %v, want AwaitingDecision", l.Phase())
	}
	if l.Task() == nil || l.Task().Status != StatusPending {
		t.Error("expected stored task with pending status")
	}
}

func TestLifecycle_SubmitFailedReturnsToDrafting(t *testing.T) {
	l := NewLifecycle()
	l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau")

	if err := l.SubmitFailed(); err != nil {
		t.Fatalf("SubmitFailed: %v", err)
	}
	if l.Phase() != PhaseDrafting {
		t.Errorf("phase = %v, want Drafting", l.Phase())
	}

	// Retry allowed after failure
	if _, err := l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau"); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}

func TestLifecycle_RoastyCannotStartFocus(t *testing.T) {
	l := NewLifecycle()
	l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau")

	task := challengeTask()
	task.Type = TypeRoasty
	task.ActionPlan = nil
	l.Created(task)

	if err := l.StartFocus(); !errors.Is(err, ErrNotFocusable) {
		t.Errorf("expected ErrNotFocusable, got %v", err)
	}
	if l.Phase() != PhaseAwaitingDecision {
		t.Errorf("phase = %v, want AwaitingDecision preserved", l.Phase())
	}
}

func TestLifecycle_ThirdStepLockedUntilTimer(t *testing.T) {
	l := focusingLifecycle(t)

	if err := l.ToggleStep(0); err != nil {
		t.Fatalf("ToggleStep(0): %v", err)
	}
	if err := l.ToggleStep(1); err != nil {
		t.Fatalf("ToggleStep(1): %v", err)
	}

	if err := l.ToggleStep(2); !errors.Is(err, ErrStepLocked) {
		t.Fatalf("expected ErrStepLocked, got %v", err)
	}
	if l.StepChecked(2) {
		t.Error("locked toggle must not change checked state")
	}

	l.TimerFinished()
	if err := l.ToggleStep(2); err != nil {
		t.Fatalf("ToggleStep(2) after timer: %v", err)
	}
	if !l.StepChecked(2) {
		t.Error("expected third step checked after unlock")
	}
}

func TestLifecycle_StepLockingDisabledWithoutThreeStepPlan(t *testing.T) {
	l := NewLifecycle()
	l.Submit("Faire ma comptabilité en retard", "J'ai la flemme et il fait beau")

	task := challengeTask()
	task.ActionPlan = []string{"une seule étape"}
	l.Created(task)
	l.StartFocus()

	if l.StepLocked(2) {
		t.Error("mismatched plan length must disable step locking")
	}
	if err := l.ToggleStep(2); err != nil {
		t.Errorf("ToggleStep(2): %v", err)
	}
}

func TestLifecycle_CanValidate(t *testing.T) {
	l := focusingLifecycle(t)

	l.ToggleStep(0)
	l.ToggleStep(1)
	if l.CanValidate() {
		t.Error("CanValidate must require the timer")
	}

	l.TimerFinished()
	if l.CanValidate() {
		t.Error("CanValidate must require all three steps")
	}

	l.ToggleStep(2)
	if !l.CanValidate() {
		t.Error("expected CanValidate with timer done and all steps checked")
	}
}

func TestLifecycle_CompleteRequiresCanValidate(t *testing.T) {
	l := focusingLifecycle(t)

	if err := l.Complete(50, false); !errors.Is(err, ErrBadPhase) {
		t.Fatalf("expected ErrBadPhase before validation, got %v", err)
	}

	l.TimerFinished()
	l.ToggleStep(0)
	l.ToggleStep(1)
	l.ToggleStep(2)

	if err := l.Complete(50, true); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if l.Phase() != PhaseResolved || l.Outcome() != OutcomeCompleted {
		t.Errorf("phase=%v outcome=%v, want Resolved/completed", l.Phase(), l.Outcome())
	}
	if l.Points() != 50 || !l.LevelUp() {
		t.Errorf("points=%d levelUp=%v, want 50/true", l.Points(), l.LevelUp())
	}
}

func TestLifecycle_AbandonAlwaysAvailableWhileFocusing(t *testing.T) {
	l := focusingLifecycle(t)
	l.ToggleStep(0)

	indices := l.CheckedIndices()
	if len(indices) != 1 || indices[0] != 0 {
		t.Fatalf("CheckedIndices() = %v, want [0]", indices)
	}

	if err := l.Abandon(5); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if l.Phase() != PhaseResolved || l.Outcome() != OutcomeAbandoned {
		t.Errorf("phase=%v outcome=%v, want Resolved/abandoned", l.Phase(), l.Outcome())
	}
	if l.LevelUp() {
		t.Error("no level up on abandon")
	}
	if len(l.CheckedIndices()) != 0 {
		t.Error("terminal resolution must clear session-local state")
	}
}

func TestLifecycle_ResolvedIsTerminal(t *testing.T) {
	l := focusingLifecycle(t)
	l.Abandon(0)

	if err := l.StartFocus(); !errors.Is(err, ErrBadPhase) {
		t.Errorf("re-entering focus: expected ErrBadPhase, got %v", err)
	}
	if err := l.ToggleStep(0); !errors.Is(err, ErrBadPhase) {
		t.Errorf("toggling after resolution: expected ErrBadPhase, got %v", err)
	}

	l.Reset()
	if l.Phase() != PhaseDrafting || l.Task() != nil {
		t.Error("Reset must return a fresh Drafting machine")
	}
}

func TestLifecycle_ResumeFocus(t *testing.T) {
	task := challengeTask()
	task.Status = StatusInProgress

	l := NewLifecycle()
	if err := l.ResumeFocus(task); err != nil {
		t.Fatalf("ResumeFocus: %v", err)
	}
	if l.Phase() != PhaseFocusing {
		t.Errorf("phase = %v, want Focusing", l.Phase())
	}

	pending := challengeTask()
	l2 := NewLifecycle()
	if err := l2.ResumeFocus(pending); !errors.Is(err, ErrBadPhase) {
		t.Errorf("resuming a pending task: expected ErrBadPhase, got %v", err)
	}
}
