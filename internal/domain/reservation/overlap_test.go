package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical ranges", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap front", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"partial overlap back", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"a contains b", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"b contains a", at(10, 15), at(10, 45), at(10, 0), at(11, 0), true},
		{"a ends where b starts", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"a starts where b ends", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTimeRangeOverlapsRange(t *testing.T) {
	a := TimeRange{Start: at(10, 0), End: at(11, 0)}
	b := TimeRange{Start: at(10, 30), End: at(11, 30)}
	c := TimeRange{Start: at(11, 0), End: at(12, 0)}

	assert.True(t, a.OverlapsRange(b))
	assert.False(t, a.OverlapsRange(c))
}
