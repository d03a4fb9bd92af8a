// Package stats derives read-only summaries from trips: lifecycle status,
// counts, durations and totals. Every function is pure; the reference instant
// is always passed in, never read from the clock.
package stats

import (
	"strings"
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// Status is the lifecycle position of a trip relative to a reference instant.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Classify places now relative to the trip's date range.
// Dates are compared as UTC calendar dates and both ends are inclusive, so a
// trip ending on 2025-06-10 is still ongoing at 23:59 that day.
func Classify(start, end, now time.Time) Status {
	today := domain.DateOf(now)
	switch {
	case today.Before(domain.DateOf(start)):
		return StatusUpcoming
	case today.After(domain.DateOf(end)):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// TripStatus classifies a trip at now.
func TripStatus(trip domain.Trip, now time.Time) Status {
	return Classify(trip.StartDate, trip.EndDate, now)
}

// ParseStatus reports whether s names a lifecycle status, ignoring case.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return st, true
	}
	return "", false
}
