// Package budget distributes a trip's expected cost across four categories
// (accommodation, food, activities, transport) and across the days of the
// trip. Categories the data model does not track per item are estimated from
// fixed per-diem Assumptions injected by the caller.
package budget

import (
	"errors"
	"fmt"
)

// SpreadPolicy decides how category totals are assigned to individual days.
type SpreadPolicy string

const (
	// SpreadUniform divides every category total evenly across all days.
	// Activities are not attributed to the day they happen on; this is a
	// known approximation that keeps every day's total equal to PerDay.
	SpreadUniform SpreadPolicy = "uniform"

	// SpreadByDay attributes each activity with a valid Day to that day.
	// Unscheduled activities are still spread evenly.
	SpreadByDay SpreadPolicy = "by_day"
)

// Assumptions are the per-diem estimates and alert thresholds the algorithm uses.
type Assumptions struct {
	TransportPerDiem  float64
	StayPerDiem       float64
	FoodPerDiem       float64
	HighThreshold     float64
	ModerateThreshold float64
	Spread            SpreadPolicy
}

// DefaultAssumptions returns the estimates used when nothing is configured:
// 20/day local transport, 80/night stay, 50/day food; per-day spend above
// 300 is high and above 150 moderate.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		TransportPerDiem:  20,
		StayPerDiem:       80,
		FoodPerDiem:       50,
		HighThreshold:     300,
		ModerateThreshold: 150,
		Spread:            SpreadUniform,
	}
}

// ErrInvalidAssumptions is returned by Validate.
var ErrInvalidAssumptions = errors.New("invalid budget assumptions")

// Validate rejects negative estimates, inverted thresholds and unknown policies.
func (a Assumptions) Validate() error {
	if a.TransportPerDiem < 0 || a.StayPerDiem < 0 || a.FoodPerDiem < 0 {
		return fmt.Errorf("%w: per-diem values must not be negative", ErrInvalidAssumptions)
	}
	if a.ModerateThreshold < 0 || a.ModerateThreshold > a.HighThreshold {
		return fmt.Errorf("%w: moderate threshold must be between 0 and the high threshold", ErrInvalidAssumptions)
	}
	switch a.Spread {
	case SpreadUniform, SpreadByDay:
	default:
		return fmt.Errorf("%w: unknown spread policy %q", ErrInvalidAssumptions, a.Spread)
	}
	return nil
}

// ParseSpreadPolicy converts a config value into a SpreadPolicy.
// The empty string selects SpreadUniform.
func ParseSpreadPolicy(s string) (SpreadPolicy, error) {
	switch SpreadPolicy(s) {
	case "", SpreadUniform:
		return SpreadUniform, nil
	case SpreadByDay:
		return SpreadByDay, nil
	}
	return "", fmt.Errorf("%w: unknown spread policy %q", ErrInvalidAssumptions, s)
}
