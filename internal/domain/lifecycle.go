package domain

import (
	"errors"
	"strings"
)

// Phase is the lifecycle state of the task currently being worked on.
// The flow is strictly forward: Drafting -> Submitting ->
// AwaitingDecision -> Focusing -> Resolved. Roasty tasks stop at
// AwaitingDecision; returning home resets the machine.
type Phase int

const (
	PhaseDrafting Phase = iota
	PhaseSubmitting
	PhaseAwaitingDecision
	PhaseFocusing
	PhaseResolved
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseDrafting:
		return "drafting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseAwaitingDecision:
		return "awaiting_decision"
	case PhaseFocusing:
		return "focusing"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the terminal resolution of a focus session
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeAbandoned Outcome = "abandoned"
)

// Draft validation thresholds, measured after trimming
const (
	MinDescriptionLen = 10
	MinExcuseLen      = 5
)

var (
	// ErrInvalidDraft means validation blocked the submit; the field
	// messages carry the detail.
	ErrInvalidDraft = errors.New("draft failed validation")

	// ErrSubmitPending guards against a duplicate submit while the
	// first create request is still in flight.
	ErrSubmitPending = errors.New("a submission is already in flight")

	// ErrBadPhase is returned by transitions invoked out of order
	ErrBadPhase = errors.New("transition not allowed in current phase")

	// ErrNotFocusable rejects starting a focus session on a roasty task
	ErrNotFocusable = errors.New("only challenge tasks can start a focus session")
)

// DraftErrors holds the independent field messages from draft
// validation. Empty string means the field passed.
type DraftErrors struct {
	Description string
	Excuse      string
}

// OK reports whether both fields passed
func (d DraftErrors) OK() bool {
	return d.Description == "" && d.Excuse == ""
}

// ValidateDraft runs both field checks independently so both messages
// can surface at once. No network call happens on failure.
func ValidateDraft(description, excuse string) DraftErrors {
	var errs DraftErrors
	if len(strings.TrimSpace(description)) < MinDescriptionLen {
		errs.Description = "La tâche doit faire au moins 10 caractères."
	}
	if len(strings.TrimSpace(excuse)) < MinExcuseLen {
		errs.Excuse = "L'excuse doit faire au moins 5 caractères."
	}
	return errs
}

// Lifecycle is the client-side state machine for a single task, from
// draft through terminal resolution. It owns the session-local UI state
// (checked steps, timer flag) so impossible flag combinations cannot be
// represented outside it.
type Lifecycle struct {
	phase     Phase
	task      *Task
	checked   [ActionPlanSteps]bool
	timerDone bool
	outcome   Outcome
	points    int
	levelUp   bool
}

// NewLifecycle returns a machine in Drafting
func NewLifecycle() *Lifecycle {
	return &Lifecycle{phase: PhaseDrafting}
}

// Phase returns the current phase
func (l *Lifecycle) Phase() Phase { return l.phase }

// Task returns the current task, nil before creation
func (l *Lifecycle) Task() *Task { return l.task }

// Submit validates the draft and moves Drafting -> Submitting. A second
// call while Submitting returns ErrSubmitPending so no duplicate create
// request is issued. Validation failure returns ErrInvalidDraft with the
// field messages.
func (l *Lifecycle) Submit(description, excuse string) (DraftErrors, error) {
	if l.phase == PhaseSubmitting {
		return DraftErrors{}, ErrSubmitPending
	}
	if l.phase != PhaseDrafting {
		return DraftErrors{}, ErrBadPhase
	}
	errs := ValidateDraft(description, excuse)
	if !errs.OK() {
		return errs, ErrInvalidDraft
	}
	l.phase = PhaseSubmitting
	return DraftErrors{}, nil
}

// Created stores the gateway's task and moves Submitting ->
// AwaitingDecision.
func (l *Lifecycle) Created(task Task) error {
	if l.phase != PhaseSubmitting {
		return ErrBadPhase
	}
	l.task = &task
	l.phase = PhaseAwaitingDecision
	return nil
}

// SubmitFailed returns to Drafting so the user can retry; the inline or
// modal error routing is the caller's concern.
func (l *Lifecycle) SubmitFailed() error {
	if l.phase != PhaseSubmitting {
		return ErrBadPhase
	}
	l.phase = PhaseDrafting
	return nil
}

// StartFocus moves AwaitingDecision -> Focusing. Challenge tasks only.
func (l *Lifecycle) StartFocus() error {
	if l.phase != PhaseAwaitingDecision {
		return ErrBadPhase
	}
	if l.task == nil || !l.task.Type.Focusable() {
		return ErrNotFocusable
	}
	l.phase = PhaseFocusing
	return nil
}

// ResumeFocus adopts an in-progress task found at startup and jumps
// straight to Focusing.
func (l *Lifecycle) ResumeFocus(task Task) error {
	if l.phase != PhaseDrafting {
		return ErrBadPhase
	}
	if task.Status != StatusInProgress {
		return ErrBadPhase
	}
	l.task = &task
	l.phase = PhaseFocusing
	return nil
}

// Started replaces the task with the in_progress version returned by
// the status update.
func (l *Lifecycle) Started(task Task) {
	if l.phase == PhaseFocusing {
		l.task = &task
	}
}

// TimerFinished records the one-shot countdown completion, unlocking
// the final step.
func (l *Lifecycle) TimerFinished() {
	if l.phase == PhaseFocusing {
		l.timerDone = true
	}
}

// TimerDone reports whether the countdown has completed
func (l *Lifecycle) TimerDone() bool { return l.timerDone }

// ToggleStep flips the checked flag for step i. The third step stays
// locked until the timer has finished; a locked toggle changes nothing
// and returns ErrStepLocked. Step locking is only meaningful with an
// exact 3-step plan.
func (l *Lifecycle) ToggleStep(i int) error {
	if l.phase != PhaseFocusing {
		return ErrBadPhase
	}
	if i < 0 || i >= ActionPlanSteps {
		return ErrBadPhase
	}
	if l.StepLocked(i) {
		return ErrStepLocked
	}
	l.checked[i] = !l.checked[i]
	return nil
}

// StepLocked reports whether step i cannot be checked yet
func (l *Lifecycle) StepLocked(i int) bool {
	if l.task == nil || !l.task.HasActionPlan() {
		return false
	}
	return i == ActionPlanSteps-1 && !l.timerDone
}

// StepChecked reports the checked flag for step i
func (l *Lifecycle) StepChecked(i int) bool {
	if i < 0 || i >= ActionPlanSteps {
		return false
	}
	return l.checked[i]
}

// CheckedIndices returns the indices checked so far, for partial-credit
// reporting on abandon.
func (l *Lifecycle) CheckedIndices() []int {
	indices := []int{}
	for i, c := range l.checked {
		if c {
			indices = append(indices, i)
		}
	}
	return indices
}

// CanValidate is true only when the timer has finished and all three
// steps are checked.
func (l *Lifecycle) CanValidate() bool {
	if l.phase != PhaseFocusing || !l.timerDone {
		return false
	}
	if l.task == nil || !l.task.HasActionPlan() {
		return false
	}
	return l.checked[0] && l.checked[1] && l.checked[2]
}

// Complete resolves the session as completed, carrying the points and
// level-up flag returned by the gateway. Requires CanValidate.
func (l *Lifecycle) Complete(points int, levelUp bool) error {
	if !l.CanValidate() {
		return ErrBadPhase
	}
	l.resolve(OutcomeCompleted, points, levelUp)
	return nil
}

// Abandon resolves the session as abandoned. Always available while
// Focusing; the confirmation step lives in the UI.
func (l *Lifecycle) Abandon(points int) error {
	if l.phase != PhaseFocusing {
		return ErrBadPhase
	}
	l.resolve(OutcomeAbandoned, points, false)
	return nil
}

func (l *Lifecycle) resolve(outcome Outcome, points int, levelUp bool) {
	l.phase = PhaseResolved
	l.outcome = outcome
	l.points = points
	l.levelUp = levelUp
	// Terminal resolutions clear the session-local state; the machine
	// is not re-enterable past this point.
	l.checked = [ActionPlanSteps]bool{}
	l.timerDone = false
}

// Outcome returns the terminal resolution, valid once Resolved
func (l *Lifecycle) Outcome() Outcome { return l.outcome }

// Points returns the points earned at resolution
func (l *Lifecycle) Points() int { return l.points }

// LevelUp reports the level-up flag carried at completion
func (l *Lifecycle) LevelUp() bool { return l.levelUp }

// Reset returns the machine to a fresh Drafting state; the only exit
// from Resolved is returning home.
func (l *Lifecycle) Reset() {
	*l = Lifecycle{phase: PhaseDrafting}
}
