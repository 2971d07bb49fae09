package domain

import "time"

// Task is a (description, excuse) pair roasted by the backend AI
type Task struct {
	ID            string     `json:"_id"`
	Description   string     `json:"description"`
	Excuse        string     `json:"excuse"`
	Type          TaskType   `json:"type"`
	Status        Status     `json:"status"`
	RoastContent  string     `json:"roastContent"`
	ActionPlan    []string   `json:"actionPlan,omitempty"`
	TimerDuration int        `json:"timerDuration,omitempty"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	PointsEarned  int        `json:"pointsEarned"`
	IsPublic      bool       `json:"isPublic"`
	IsLevelUp     bool       `json:"isLevelUp"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}

// DefaultTimerDuration is the focus session length in seconds when the
// backend does not set one (25 minutes).
const DefaultTimerDuration = 25 * 60

// ActionPlanSteps is the plan length the focus flow is built around
const ActionPlanSteps = 3

// Duration returns the focus timer duration in seconds
func (t Task) Duration() int {
	if t.TimerDuration > 0 {
		return t.TimerDuration
	}
	return DefaultTimerDuration
}

// RemainingAt computes the seconds left on a resumed focus session.
// A task without a start timestamp gets the full duration.
func (t Task) RemainingAt(now time.Time) int {
	d := t.Duration()
	if t.StartedAt == nil {
		return d
	}
	elapsed := int(now.Sub(*t.StartedAt).Seconds())
	if elapsed >= d {
		return 0
	}
	if elapsed < 0 {
		return d
	}
	return d - elapsed
}

// HasActionPlan reports whether the task carries the 3-step plan the
// focus flow expects. Plans of any other length disable step locking.
func (t Task) HasActionPlan() bool {
	return len(t.ActionPlan) == ActionPlanSteps
}

// Status represents task status
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether the status is a final resolution
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// TaskType selects between the full challenge flow and a roast-only run
type TaskType string

const (
	TypeChallenge TaskType = "challenge"
	TypeRoasty    TaskType = "roasty"
)

// Focusable reports whether this type unlocks the focus session
func (t TaskType) Focusable() bool {
	return t == TypeChallenge
}

// String returns the display string
func (t TaskType) String() string {
	return string(t)
}
