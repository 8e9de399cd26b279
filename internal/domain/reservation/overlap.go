package reservation

import "time"

// TimeRange is a half-open interval [Start, End) within one calendar date.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Single source of truth for conflict semantics: both the slot calculator
// and the create path delegate here so shown availability and accepted
// bookings cannot drift apart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func (r TimeRange) OverlapsRange(o TimeRange) bool {
	return Overlaps(r.Start, r.End, o.Start, o.End)
}
