package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperatingSchedule(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		wantErr bool
	}{
		{
			name: "valid full week",
			raw: map[string]string{
				"monday":    "09:00-18:00",
				"tuesday":   "09:00-18:00",
				"wednesday": "09:00-18:00",
				"thursday":  "09:00-18:00",
				"friday":    "09:00-20:00",
				"saturday":  "10:00-16:00",
				"sunday":    "closed",
			},
		},
		{
			name: "case insensitive day names",
			raw:  map[string]string{"Monday": "09:00-18:00"},
		},
		{
			name:    "empty schedule",
			raw:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "unknown day",
			raw:     map[string]string{"funday": "09:00-18:00"},
			wantErr: true,
		},
		{
			name:    "missing leading zero",
			raw:     map[string]string{"monday": "9:00-18:00"},
			wantErr: true,
		},
		{
			name:    "hour out of range",
			raw:     map[string]string{"monday": "25:00-26:00"},
			wantErr: true,
		},
		{
			name:    "minute out of range",
			raw:     map[string]string{"monday": "09:61-18:00"},
			wantErr: true,
		},
		{
			name:    "garbage value",
			raw:     map[string]string{"monday": "open all day"},
			wantErr: true,
		},
		{
			// Syntactically valid; produces no slots downstream.
			name: "close before open accepted",
			raw:  map[string]string{"monday": "18:00-09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOperatingSchedule(tt.raw)
			if tt.wantErr {
				assert.ErrorAs(t, err, &InvalidScheduleError{})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHoursOn(t *testing.T) {
	schedule, err := ParseOperatingSchedule(map[string]string{
		"monday": "09:00-18:00",
		"sunday": "closed",
	})
	require.NoError(t, err)

	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	open, close, ok := schedule.HoursOn(monday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC), close)

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, _, ok = schedule.HoursOn(sunday)
	assert.False(t, ok, "closed day should have no hours")

	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	_, _, ok = schedule.HoursOn(tuesday)
	assert.False(t, ok, "unlisted day should have no hours")
}
