package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Operating Schedule
// ===============================

const closedMarker = "closed"

var timeRangePattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type dayHours struct {
	openHour, openMin   int
	closeHour, closeMin int
}

// OperatingSchedule is a shop's validated weekly open/close schedule.
// Immutable once parsed; days marked "closed" carry no entry.
type OperatingSchedule struct {
	days map[time.Weekday]dayHours
}

// ParseOperatingSchedule validates a weekday -> "HH:MM-HH:MM" | "closed" map.
// Syntax only: close <= open is accepted here and yields zero slots downstream.
func ParseOperatingSchedule(raw map[string]string) (OperatingSchedule, error) {
	if len(raw) == 0 {
		return OperatingSchedule{}, InvalidScheduleError{Reason: "schedule cannot be empty"}
	}

	days := make(map[time.Weekday]dayHours, len(raw))
	for day, value := range raw {
		wd, ok := weekdays[strings.ToLower(day)]
		if !ok {
			return OperatingSchedule{}, InvalidScheduleError{Reason: "invalid day: " + day}
		}

		if value == closedMarker {
			continue
		}

		if !timeRangePattern.MatchString(value) {
			return OperatingSchedule{}, InvalidScheduleError{Reason: "invalid time format: " + value}
		}

		parts := strings.Split(value, "-")
		openH, openM, err := parseHM(parts[0])
		if err != nil {
			return OperatingSchedule{}, err
		}
		closeH, closeM, err := parseHM(parts[1])
		if err != nil {
			return OperatingSchedule{}, err
		}

		days[wd] = dayHours{
			openHour: openH, openMin: openM,
			closeHour: closeH, closeMin: closeM,
		}
	}

	return OperatingSchedule{days: days}, nil
}

func parseHM(hm string) (int, int, error) {
	h, _ := strconv.Atoi(hm[:2])
	m, _ := strconv.Atoi(hm[3:])
	if h > 23 {
		return 0, 0, InvalidScheduleError{Reason: fmt.Sprintf("hours must be between 0 and 23: %s", hm)}
	}
	if m > 59 {
		return 0, 0, InvalidScheduleError{Reason: fmt.Sprintf("minutes must be between 0 and 59: %s", hm)}
	}
	return h, m, nil
}

// HoursOn resolves the weekday of date and returns the open/close bounds
// anchored to that date. ok is false when the day is absent or closed.
func (s OperatingSchedule) HoursOn(date time.Time) (open, close time.Time, ok bool) {
	dh, found := s.days[date.Weekday()]
	if !found {
		return time.Time{}, time.Time{}, false
	}

	loc := date.Location()
	open = time.Date(date.Year(), date.Month(), date.Day(), dh.openHour, dh.openMin, 0, 0, loc)
	close = time.Date(date.Year(), date.Month(), date.Day(), dh.closeHour, dh.closeMin, 0, 0, loc)
	return open, close, true
}
