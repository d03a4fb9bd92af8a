package filter

import (
	"strings"
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// CostBucket groups activities by price for list views.
type CostBucket string

const (
	BucketFree     CostBucket = "free"     // exactly 0
	BucketBudget   CostBucket = "budget"   // (0, 30]
	BucketModerate CostBucket = "moderate" // (30, 70]
	BucketPremium  CostBucket = "premium"  // above 70
)

// Bucket upper bounds.
const (
	budgetCeiling   = 30
	moderateCeiling = 70
)

// BucketOf returns the bucket a cost falls into.
func BucketOf(cost float64) CostBucket {
	switch {
	case cost <= 0:
		return BucketFree
	case cost <= budgetCeiling:
		return BucketBudget
	case cost <= moderateCeiling:
		return BucketModerate
	default:
		return BucketPremium
	}
}

// ParseCostBucket reports whether s names a bucket.
func ParseCostBucket(s string) (CostBucket, bool) {
	b := CostBucket(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BucketFree, BucketBudget, BucketModerate, BucketPremium:
		return b, true
	}
	return "", false
}

// ---- activities -------------------------------------------------------------

// Text matches activities whose name or description contains q, ignoring case.
func Text(q string) Predicate[domain.Activity] {
	return func(a domain.Activity) bool {
		return containsFold(a.Name, q) || containsFold(a.Description, q)
	}
}

// Category matches activities tagged c.
func Category(c domain.Category) Predicate[domain.Activity] {
	return func(a domain.Activity) bool { return a.Category == c }
}

// Bucket matches activities whose cost falls into b.
func Bucket(b CostBucket) Predicate[domain.Activity] {
	return func(a domain.Activity) bool { return BucketOf(a.Cost) == b }
}

// MaxCost matches activities costing at most limit.
func MaxCost(limit float64) Predicate[domain.Activity] {
	return func(a domain.Activity) bool { return a.Cost <= limit }
}

// ---- trips ------------------------------------------------------------------

// TripText matches trips whose name, description or any stop's city or
// country contains q, ignoring case.
func TripText(q string) Predicate[domain.Trip] {
	return func(t domain.Trip) bool {
		if containsFold(t.Name, q) || containsFold(t.Description, q) {
			return true
		}
		for _, d := range t.Destinations {
			if containsFold(d.City, q) || containsFold(d.Country, q) {
				return true
			}
		}
		return false
	}
}

// TripStatus matches trips in lifecycle status s at the reference instant now.
func TripStatus(s stats.Status, now time.Time) Predicate[domain.Trip] {
	return func(t domain.Trip) bool { return stats.TripStatus(t, now) == s }
}

// ---- cities -----------------------------------------------------------------

// City is a discoverable destination city.
type City struct {
	Name       string
	Country    string
	Region     string
	CostIndex  int // 1 (cheap) to 10 (expensive)
	Popularity int // 0 to 100
}

// CityText matches cities whose name or country contains q, ignoring case.
func CityText(q string) Predicate[City] {
	return func(c City) bool { return containsFold(c.Name, q) || containsFold(c.Country, q) }
}

// Region matches cities in region r, ignoring case.
func Region(r string) Predicate[City] {
	return func(c City) bool { return strings.EqualFold(c.Region, r) }
}
