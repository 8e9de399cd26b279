package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

// transitions is the single source of truth for the lifecycle. Statuses
// without an entry are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the reservation occupies its time range for
// overlap purposes.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses returns the statuses checked by conflict queries.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
