package clock

import "time"

const DefaultTimezone = "Asia/Seoul"

// Clock is the injected time source. Domain code and use cases never call
// time.Now directly so past-date checks and timestamp stamping stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

type systemClock struct {
	loc *time.Location
}

func System(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type fixedClock struct {
	t time.Time
}

// Fixed returns a clock frozen at t, for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
