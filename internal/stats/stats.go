package stats

import (
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// BudgetSource records which rule produced a trip's total budget.
type BudgetSource string

const (
	// SourceDeclared means the traveller's declared Budget.Total was used.
	SourceDeclared BudgetSource = "declared"
	// SourceActivities means no total was declared and activity costs were summed.
	SourceActivities BudgetSource = "activities"
)

// Derived is the computed summary of a single trip. It is never persisted.
type Derived struct {
	Status           Status
	DurationDays     int
	Nights           int
	DestinationCount int
	ActivityCount    int
	TotalBudget      float64
	BudgetSource     BudgetSource
	PerDayBudget     float64
}

// DestinationCount returns the number of stops on the trip.
func DestinationCount(trip domain.Trip) int {
	return len(trip.Destinations)
}

// ActivityCount returns the number of activities across all stops.
func ActivityCount(trip domain.Trip) int {
	n := 0
	for _, d := range trip.Destinations {
		n += len(d.Activities)
	}
	return n
}

// DurationDays returns the inclusive day count of the trip (at least 1).
func DurationDays(trip domain.Trip) int {
	return domain.InclusiveDaysBetween(trip.StartDate, trip.EndDate)
}

// Nights returns the number of nights the trip spans.
func Nights(trip domain.Trip) int {
	return domain.NightsBetween(trip.StartDate, trip.EndDate)
}

// ActivitiesCost sums the declared cost of every activity on the trip.
func ActivitiesCost(trip domain.Trip) float64 {
	var sum float64
	for _, d := range trip.Destinations {
		for _, a := range d.Activities {
			sum += a.Cost
		}
	}
	return sum
}

// TotalBudget returns the declared total when one is set (non-zero), otherwise
// the sum of activity costs. The two are never blended.
func TotalBudget(trip domain.Trip) (float64, BudgetSource) {
	if trip.Budget != nil && trip.Budget.Total > 0 {
		return trip.Budget.Total, SourceDeclared
	}
	return ActivitiesCost(trip), SourceActivities
}

// Derive computes the full summary of trip at now.
func Derive(trip domain.Trip, now time.Time) Derived {
	total, source := TotalBudget(trip)
	days := DurationDays(trip)
	return Derived{
		Status:           TripStatus(trip, now),
		DurationDays:     days,
		Nights:           Nights(trip),
		DestinationCount: DestinationCount(trip),
		ActivityCount:    ActivityCount(trip),
		TotalBudget:      total,
		BudgetSource:     source,
		PerDayBudget:     total / float64(days),
	}
}
