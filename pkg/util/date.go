package util

import "time"

// DayLayout is the calendar-date wire format used across the API.
const DayLayout = "2006-01-02"

// ParseDay parses a plain calendar date. Returns (t, true) if s is a valid
// YYYY-MM-DD date.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today truncates now to its UTC calendar date.
func Today(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
