package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/models"
)

// ===============================
// Reservation Lifecycle
// ===============================

const maxTextLength = 200

// New builds a PENDING reservation snapshot. End time is frozen at creation
// as start + treatment duration; both timestamps are stamped from now.
func New(
	shopID uuid.UUID,
	memberID uuid.UUID,
	treatmentID uuid.UUID,
	date time.Time,
	start time.Time,
	durationMin int,
	memo string,
	now time.Time,
) (models.Reservation, error) {

	normalized, err := NormalizeMemo(memo)
	if err != nil {
		return models.Reservation{}, err
	}

	return models.Reservation{
		ID:          uuid.New(),
		ShopID:      shopID,
		MemberID:    memberID,
		TreatmentID: treatmentID,
		Date:        date,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(durationMin) * time.Minute),
		Status:      string(StatusPending),
		Memo:        normalized,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Transition returns a fresh snapshot with the target status applied and
// UpdatedAt refreshed. The input value is never mutated. reason is required
// when and only when target is REJECTED; it is ignored otherwise.
func Transition(
	r models.Reservation,
	target Status,
	reason string,
	now time.Time,
) (models.Reservation, error) {

	current := Status(r.Status)
	if !current.CanTransitionTo(target) {
		return models.Reservation{}, InvalidTransitionError{From: current, To: target}
	}

	if target == StatusRejected {
		validated, err := ValidateRejectionReason(reason)
		if err != nil {
			return models.Reservation{}, err
		}
		r.RejectionReason = validated
	}

	r.Status = string(target)
	r.UpdatedAt = now
	return r, nil
}

// NormalizeMemo trims the optional memo. Blank input means absent, not an
// error; anything longer than 200 chars after trimming is rejected.
func NormalizeMemo(memo string) (string, error) {
	trimmed := strings.TrimSpace(memo)
	if trimmed == "" {
		return "", nil
	}
	if len([]rune(trimmed)) > maxTextLength {
		return "", ValidationError{Field: "memo", Reason: "must be at most 200 characters"}
	}
	return trimmed, nil
}

// ValidateRejectionReason requires a non-blank reason of at most 200 chars.
func ValidateRejectionReason(reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", ValidationError{Field: "rejection_reason", Reason: "must not be blank"}
	}
	if len([]rune(trimmed)) > maxTextLength {
		return "", ValidationError{Field: "rejection_reason", Reason: "must be at most 200 characters"}
	}
	return trimmed, nil
}

// ActiveRanges projects the active reservations of a day onto their occupied
// time ranges for slot computation.
func ActiveRanges(reservations []models.Reservation) []TimeRange {
	ranges := make([]TimeRange, 0, len(reservations))
	for _, r := range reservations {
		if Status(r.Status).IsActive() {
			ranges = append(ranges, TimeRange{Start: r.StartTime, End: r.EndTime})
		}
	}
	return ranges
}
