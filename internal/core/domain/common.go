package domain

import "time"

// DateLayout is the wire format for calendar dates (transaction and record dates).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// NormalizeDate drops the clock part of t, keeping its calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SubtractMonths moves t back by the given number of calendar months.
// When the target month is shorter than t's day of month, the result is clamped
// to the last day of the target month: Aug 31 minus 6 months is Feb 28 (or 29).
// time.AddDate would instead normalise Feb 31 into early March.
func SubtractMonths(t time.Time, months int) time.Time {
	t = NormalizeDate(t)
	y, m, d := t.Date()

	total := y*12 + int(m-1) - months
	ty, tm := total/12, time.Month(total%12+1)

	if last := daysIn(ty, tm); d > last {
		d = last
	}
	return time.Date(ty, tm, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
