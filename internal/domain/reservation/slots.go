package reservation

import "time"

// ===============================
// Slot Calculation
// ===============================

// SlotIntervalMinutes is the fixed slot granularity.
const SlotIntervalMinutes = 30

// Slot is a computed candidate start time, never persisted.
type Slot struct {
	Start     time.Time `json:"start_time"`
	Available bool      `json:"available"`
}

// ComputeSlots generates candidate slots between open and close for a
// treatment of durationMin minutes, marking each against the active
// reservations of the day. Pure function of its inputs: recomputed on every
// request, safe under concurrent reads. close <= open yields no slots.
func ComputeSlots(open, close time.Time, durationMin int, active []TimeRange) []Slot {
	duration := time.Duration(durationMin) * time.Minute

	var slots []Slot
	for candidate := open; !candidate.Add(duration).After(close); candidate = candidate.Add(SlotIntervalMinutes * time.Minute) {
		want := TimeRange{Start: candidate, End: candidate.Add(duration)}

		available := true
		for _, r := range active {
			if want.OverlapsRange(r) {
				available = false
				break
			}
		}

		slots = append(slots, Slot{Start: want.Start, Available: available})
	}

	return slots
}

// HasAvailableSlot short-circuits on the first free slot of the day.
func HasAvailableSlot(open, close time.Time, durationMin int, active []TimeRange) bool {
	for _, s := range ComputeSlots(open, close, durationMin, active) {
		if s.Available {
			return true
		}
	}
	return false
}

// ComputeAvailableDates walks [from, to] ascending and keeps the dates with
// at least one available slot. Days absent from the schedule or marked
// closed are skipped; an inverted range returns an empty result. activeOn
// supplies the active reservation ranges for a given date.
func ComputeAvailableDates(
	schedule OperatingSchedule,
	durationMin int,
	from, to time.Time,
	activeOn func(date time.Time) []TimeRange,
) []time.Time {

	var dates []time.Time
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		open, close, ok := schedule.HoursOn(date)
		if !ok {
			continue
		}

		if HasAvailableSlot(open, close, durationMin, activeOn(date)) {
			dates = append(dates, date)
		}
	}

	return dates
}
