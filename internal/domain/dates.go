package domain

import "time"

// DateLayout is the ISO calendar date format used on the wire and in exports.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// DateOf truncates t to midnight UTC of its calendar date.
// Dates are compared in UTC so results do not depend on the server time zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of nights between the calendar dates of
// start and end, as given by DateOf. Times of day are ignored. A same-day
// range has zero nights and ranges where end precedes start yield 0.
func NightsBetween(start, end time.Time) int {
	diff := DateOf(end).Sub(DateOf(start))
	if diff <= 0 {
		return 0
	}
	return int(diff / day)
}

// InclusiveDaysBetween returns the number of calendar days covered by the
// range, counting both ends. It is always at least 1, so it is safe to divide by.
func InclusiveDaysBetween(start, end time.Time) int {
	return NightsBetween(start, end) + 1
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}
