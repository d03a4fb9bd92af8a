package budget

import (
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// Tier is the qualitative alert derived from average daily spend.
type Tier string

const (
	TierHigh           Tier = "High"
	TierModerate       Tier = "Moderate"
	TierBudgetFriendly Tier = "Budget-friendly"
)

// Categories holds one amount per budget category.
type Categories struct {
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
}

// Sum returns the total across the four categories.
func (c Categories) Sum() float64 {
	return c.Accommodation + c.Food + c.Activities + c.Transport
}

// Day is one entry of the daily schedule.
type Day struct {
	Index int // 0-based
	Date  time.Time
	Categories
	Total float64
}

// Breakdown is the full cost allocation for a trip. It is never persisted.
type Breakdown struct {
	Categories
	Total  float64
	PerDay float64
	Days   int
	Tier   Tier
	Daily  []Day
}

// Calculate allocates the trip's expected cost across categories and days.
// The day count is clamped to at least 1 before any division.
func Calculate(trip domain.Trip, a Assumptions) Breakdown {
	n := max(stats.DurationDays(trip), 1)
	days := float64(n)

	totals := Categories{
		Accommodation: days * a.StayPerDiem,
		Food:          days * a.FoodPerDiem,
		Activities:    stats.ActivitiesCost(trip),
		Transport:     days * a.TransportPerDiem,
	}
	total := totals.Sum()
	perDay := total / days

	return Breakdown{
		Categories: totals,
		Total:      total,
		PerDay:     perDay,
		Days:       n,
		Tier:       TierFor(perDay, a),
		Daily:      schedule(trip, totals, n, a.Spread),
	}
}

// TierFor classifies an average daily spend against the thresholds in a.
func TierFor(perDay float64, a Assumptions) Tier {
	switch {
	case perDay > a.HighThreshold:
		return TierHigh
	case perDay > a.ModerateThreshold:
		return TierModerate
	default:
		return TierBudgetFriendly
	}
}

// schedule builds one Day per calendar day of the trip.
func schedule(trip domain.Trip, totals Categories, n int, policy SpreadPolicy) []Day {
	days := float64(n)
	even := Categories{
		Accommodation: totals.Accommodation / days,
		Food:          totals.Food / days,
		Activities:    totals.Activities / days,
		Transport:     totals.Transport / days,
	}

	activities := make([]float64, n)
	if policy == SpreadByDay {
		activities = activitiesByDay(trip, n)
	} else {
		for i := range activities {
			activities[i] = even.Activities
		}
	}

	out := make([]Day, n)
	for i := range out {
		c := even
		c.Activities = activities[i]
		out[i] = Day{
			Index:      i,
			Date:       domain.AddDays(trip.StartDate, i),
			Categories: c,
			Total:      c.Sum(),
		}
	}
	return out
}

// activitiesByDay attributes each scheduled activity's cost to its day and
// spreads the rest evenly. Day numbers outside 1..n count as unscheduled.
func activitiesByDay(trip domain.Trip, n int) []float64 {
	perDay := make([]float64, n)
	var unscheduled float64
	for _, d := range trip.Destinations {
		for _, a := range d.Activities {
			if a.Day >= 1 && a.Day <= n {
				perDay[a.Day-1] += a.Cost
			} else {
				unscheduled += a.Cost
			}
		}
	}
	share := unscheduled / float64(n)
	for i := range perDay {
		perDay[i] += share
	}
	return perDay
}

// Shares returns each category as a fraction of the total, for charts.
// The fractions sum to 1; a zero total reports all zeros.
func (b Breakdown) Shares() Categories {
	if b.Total <= 0 {
		return Categories{}
	}
	return Categories{
		Accommodation: b.Accommodation / b.Total,
		Food:          b.Food / b.Total,
		Activities:    b.Activities / b.Total,
		Transport:     b.Transport / b.Total,
	}
}
