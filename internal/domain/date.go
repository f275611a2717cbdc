package domain

import "time"

// DayUTC truncates t to its calendar date at UTC midnight. All calendar
// cells, check-in/check-out boundaries and adjustment ranges are stored
// this way so that date equality is plain time.Equal.
func DayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns every date in [from, to), normalized to UTC midnight.
func DaysBetween(from, to time.Time) []time.Time {
	from, to = DayUTC(from), DayUTC(to)

	var days []time.Time
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
