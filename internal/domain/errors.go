package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the UI routes on
var (
	// ErrQuotaExceeded is the server-signaled creation quota (HTTP 403);
	// routed to the quota modal, never shown inline.
	ErrQuotaExceeded = errors.New("roast quota exceeded")

	// ErrAlreadyResolved means a status update was rejected because the
	// task is already terminal. Non-fatal: the client redirects home.
	ErrAlreadyResolved = errors.New("task already resolved")

	// ErrStepLocked is returned when the third action-plan step is
	// toggled before the timer has finished.
	ErrStepLocked = errors.New("step locked until timer finishes")

	// ErrNotFound maps HTTP 404 responses
	ErrNotFound = errors.New("not found")
)

// ValidationError is a field-scoped, client-only input error. It never
// reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// APIError carries a gateway failure with the server message, already
// stripped of transport details.
type APIError struct {
	Op         string // "create task", "update status", ...
	StatusCode int
	Message    string // server-provided, user-facing
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("api %s failed (status %d)", e.Op, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text safe to surface inline
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "La requête a échoué. Réessaie."
}
