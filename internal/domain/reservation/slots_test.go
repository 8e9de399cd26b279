package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayAt(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestComputeSlots_EmptyDay(t *testing.T) {
	slots := ComputeSlots(mondayAt(9, 0), mondayAt(18, 0), 60, nil)

	// 09:00 through 17:00 inclusive at 30-minute steps. 17:30 is excluded
	// because 17:30+60min runs past close.
	require.Len(t, slots, 17)
	assert.Equal(t, mondayAt(9, 0), slots[0].Start)
	assert.Equal(t, mondayAt(17, 0), slots[len(slots)-1].Start)

	for i, s := range slots {
		assert.True(t, s.Available, "slot %d should be available", i)
		assert.Equal(t, mondayAt(9, 0).Add(time.Duration(i)*30*time.Minute), s.Start)
	}
}

func TestComputeSlots_MarksOverlapsUnavailable(t *testing.T) {
	active := []TimeRange{{Start: mondayAt(10, 0), End: mondayAt(11, 0)}}

	slots := ComputeSlots(mondayAt(9, 0), mondayAt(18, 0), 60, active)

	byStart := make(map[string]bool, len(slots))
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s.Available
	}

	assert.True(t, byStart["09:00"], "09:00-10:00 touches but does not overlap")
	assert.False(t, byStart["09:30"], "09:30-10:30 overlaps the booking")
	assert.False(t, byStart["10:00"], "10:00-11:00 is the booking itself")
	assert.False(t, byStart["10:30"], "10:30-11:30 overlaps the booking")
	assert.True(t, byStart["11:00"], "11:00-12:00 starts exactly at the booking end")
}

func TestComputeSlots_ShortTreatmentLastSlot(t *testing.T) {
	slots := ComputeSlots(mondayAt(9, 0), mondayAt(18, 0), 30, nil)

	// A 30-minute treatment fits at 17:30.
	require.NotEmpty(t, slots)
	assert.Equal(t, mondayAt(17, 30), slots[len(slots)-1].Start)
}

func TestComputeSlots_NoRoomForDuration(t *testing.T) {
	assert.Empty(t, ComputeSlots(mondayAt(9, 0), mondayAt(9, 30), 60, nil))
}

func TestComputeSlots_CloseNotAfterOpen(t *testing.T) {
	assert.Empty(t, ComputeSlots(mondayAt(18, 0), mondayAt(9, 0), 60, nil))
	assert.Empty(t, ComputeSlots(mondayAt(9, 0), mondayAt(9, 0), 30, nil))
}

func TestComputeSlots_Deterministic(t *testing.T) {
	active := []TimeRange{{Start: mondayAt(12, 0), End: mondayAt(13, 30)}}

	first := ComputeSlots(mondayAt(9, 0), mondayAt(18, 0), 90, active)
	second := ComputeSlots(mondayAt(9, 0), mondayAt(18, 0), 90, active)

	assert.Equal(t, first, second)
}

func TestHasAvailableSlot(t *testing.T) {
	// One 60-min booking still leaves room elsewhere in the day.
	active := []TimeRange{{Start: mondayAt(10, 0), End: mondayAt(11, 0)}}
	assert.True(t, HasAvailableSlot(mondayAt(9, 0), mondayAt(18, 0), 60, active))

	// A booking covering the whole day leaves nothing.
	full := []TimeRange{{Start: mondayAt(9, 0), End: mondayAt(18, 0)}}
	assert.False(t, HasAvailableSlot(mondayAt(9, 0), mondayAt(18, 0), 60, full))
}

func TestComputeAvailableDates(t *testing.T) {
	schedule, err := ParseOperatingSchedule(map[string]string{
		"monday":  "09:00-18:00",
		"tuesday": "09:00-18:00",
		"sunday":  "closed",
	})
	require.NoError(t, err)

	// Sunday 2025-06-01 through Wednesday 2025-06-04.
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	fullyBooked := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	activeOn := func(date time.Time) []TimeRange {
		if date.Equal(fullyBooked) {
			return []TimeRange{{
				Start: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC),
			}}
		}
		return nil
	}

	dates := ComputeAvailableDates(schedule, 60, from, to, activeOn)

	// Sunday is closed, Tuesday is fully booked, Wednesday is unlisted.
	require.Len(t, dates, 1)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestComputeAvailableDates_InvertedRange(t *testing.T) {
	schedule, err := ParseOperatingSchedule(map[string]string{"monday": "09:00-18:00"})
	require.NoError(t, err)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, ComputeAvailableDates(schedule, 60, from, to, func(time.Time) []TimeRange { return nil }))
}
