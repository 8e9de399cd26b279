package reservation

import (
	"fmt"
	"time"
)

// ===============================
// Domain Errors
// ===============================

// InvalidScheduleError reports a malformed operating-hours map. It is raised
// at shop-configuration time and never reaches the slot calculator.
type InvalidScheduleError struct {
	Reason string
}

func (e InvalidScheduleError) Error() string {
	return "invalid operating schedule: " + e.Reason
}

// PastDateError reports a booking attempt for a date before today.
type PastDateError struct {
	Date time.Time
}

func (e PastDateError) Error() string {
	return "reservation date is in the past: " + e.Date.Format("2006-01-02")
}

// ConflictError reports an overlap with an existing active reservation and
// carries the conflicting range for diagnostics.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e ConflictError) Error() string {
	return fmt.Sprintf(
		"time range conflicts with an existing reservation [%s, %s)",
		e.Start.Format("15:04"),
		e.End.Format("15:04"),
	)
}

// NotFoundError reports an unresolvable shop, treatment, or reservation
// reference.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found: " + e.ID
}

// InvalidTransitionError reports a state change not permitted from the
// current status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// ValidationError reports an input field that failed domain validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
