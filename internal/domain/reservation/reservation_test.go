package reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jellomark/beautishop-scheduler/internal/models"
)

func TestCanTransitionTo(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
	}

	all := []Status{
		StatusPending, StatusConfirmed, StatusRejected,
		StatusCancelled, StatusCompleted, StatusNoShow,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusNoShow.IsActive())
}

func TestNew(t *testing.T) {
	shopID := uuid.New()
	memberID := uuid.New()
	treatmentID := uuid.New()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	res, err := New(shopID, memberID, treatmentID, date, start, 60, "  window seat please  ", now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, shopID, res.ShopID)
	assert.Equal(t, memberID, res.MemberID)
	assert.Equal(t, treatmentID, res.TreatmentID)
	assert.Equal(t, string(StatusPending), res.Status)
	assert.Equal(t, start, res.StartTime)
	assert.Equal(t, start.Add(time.Hour), res.EndTime)
	assert.Equal(t, "window seat please", res.Memo)
	assert.Equal(t, now, res.CreatedAt)
	assert.Equal(t, now, res.UpdatedAt)
}

func TestNew_MemoTooLong(t *testing.T) {
	memo := strings.Repeat("a", 201)

	_, err := New(
		uuid.New(), uuid.New(), uuid.New(),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		60, memo, time.Now(),
	)

	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "memo", vErr.Field)
}

func TestNormalizeMemo(t *testing.T) {
	got, err := NormalizeMemo("   ")
	require.NoError(t, err)
	assert.Empty(t, got, "blank memo means absent")

	got, err = NormalizeMemo("  please be gentle  ")
	require.NoError(t, err)
	assert.Equal(t, "please be gentle", got)

	// 200 chars post-trim is valid, 201 is not.
	_, err = NormalizeMemo(strings.Repeat("b", 200))
	assert.NoError(t, err)
	_, err = NormalizeMemo(strings.Repeat("b", 201))
	assert.Error(t, err)
}

func pendingReservation() models.Reservation {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	res, _ := New(
		uuid.New(), uuid.New(), uuid.New(),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		60, "", created,
	)
	return res
}

func TestTransition_Confirm(t *testing.T) {
	res := pendingReservation()
	now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	updated, err := Transition(res, StatusConfirmed, "", now)
	require.NoError(t, err)

	assert.Equal(t, string(StatusConfirmed), updated.Status)
	assert.Equal(t, now, updated.UpdatedAt)

	// Everything but status and UpdatedAt survives unchanged.
	assert.Equal(t, res.ID, updated.ID)
	assert.Equal(t, res.StartTime, updated.StartTime)
	assert.Equal(t, res.EndTime, updated.EndTime)
	assert.Equal(t, res.CreatedAt, updated.CreatedAt)

	// The input snapshot is untouched.
	assert.Equal(t, string(StatusPending), res.Status)
}

func TestTransition_RejectRequiresReason(t *testing.T) {
	res := pendingReservation()
	now := time.Now()

	_, err := Transition(res, StatusRejected, "", now)
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rejection_reason", vErr.Field)

	_, err = Transition(res, StatusRejected, "   ", now)
	assert.Error(t, err, "blank reason is rejected")

	updated, err := Transition(res, StatusRejected, "fully booked", now)
	require.NoError(t, err)
	assert.Equal(t, string(StatusRejected), updated.Status)
	assert.Equal(t, "fully booked", updated.RejectionReason)
}

func TestTransition_ReasonIgnoredOutsideReject(t *testing.T) {
	res := pendingReservation()

	updated, err := Transition(res, StatusConfirmed, "irrelevant", time.Now())
	require.NoError(t, err)
	assert.Empty(t, updated.RejectionReason)
}

func TestTransition_FromTerminalStatus(t *testing.T) {
	for _, terminal := range []Status{StatusRejected, StatusCancelled, StatusCompleted, StatusNoShow} {
		res := pendingReservation()
		res.Status = string(terminal)

		_, err := Transition(res, StatusConfirmed, "", time.Now())

		var tErr InvalidTransitionError
		require.ErrorAs(t, err, &tErr, "from %s", terminal)
		assert.Equal(t, terminal, tErr.From)
		assert.Equal(t, StatusConfirmed, tErr.To)
	}
}

func TestTransition_PendingCannotComplete(t *testing.T) {
	res := pendingReservation()

	_, err := Transition(res, StatusCompleted, "", time.Now())
	assert.ErrorAs(t, err, &InvalidTransitionError{})

	_, err = Transition(res, StatusNoShow, "", time.Now())
	assert.ErrorAs(t, err, &InvalidTransitionError{})
}

func TestActiveRanges(t *testing.T) {
	mk := func(status Status, startHour int) models.Reservation {
		return models.Reservation{
			Status:    string(status),
			StartTime: time.Date(2025, 6, 2, startHour, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 2, startHour+1, 0, 0, 0, time.UTC),
		}
	}

	ranges := ActiveRanges([]models.Reservation{
		mk(StatusPending, 9),
		mk(StatusCancelled, 10),
		mk(StatusConfirmed, 11),
		mk(StatusCompleted, 12),
	})

	require.Len(t, ranges, 2)
	assert.Equal(t, 9, ranges[0].Start.Hour())
	assert.Equal(t, 11, ranges[1].Start.Hour())
}
