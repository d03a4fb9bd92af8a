package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

func activities() []domain.Activity {
	return []domain.Activity{
		{Name: "Eiffel Tower Visit", Description: "Panoramic views", Cost: 25, Category: domain.CategorySightseeing},
		{Name: "French Cooking Class", Description: "Learn French cuisine", Cost: 85, Category: domain.CategoryFood},
		{Name: "Street Food Walk", Description: "Crêpes and cheese", Cost: 30, Category: domain.CategoryFood},
		{Name: "Senso-ji Temple", Description: "Ancient Buddhist temple", Cost: 0, Category: domain.CategoryCulture},
		{Name: "Tsukiji Market Tour", Description: "Sushi breakfast", Cost: 50, Category: domain.CategoryFood},
		{Name: "Ramen Tasting", Description: "Three bowls", Cost: 12, Category: domain.CategoryFood},
	}
}

func names(as []domain.Activity) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

func TestApply_NoPredicatesIsIdentity(t *testing.T) {
	in := activities()

	out := filter.Apply(in)

	assert.Equal(t, in, out)
	assert.Same(t, &in[0], &out[0], "empty filter set returns the original collection")
}

func TestApply_CompositionIsOrderIndependent(t *testing.T) {
	food := filter.Category(domain.CategoryFood)
	cheap := filter.MaxCost(30)

	a := filter.Apply(filter.Apply(activities(), food), cheap)
	b := filter.Apply(filter.Apply(activities(), cheap), food)
	c := filter.Apply(activities(), cheap, food)

	assert.ElementsMatch(t, names(a), names(b))
	assert.ElementsMatch(t, names(a), names(c))
	assert.Equal(t, []string{"Street Food Walk", "Ramen Tasting"}, names(a))
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	in := activities()

	_ = filter.Apply(in, filter.Category(domain.CategoryCulture))

	assert.Equal(t, activities(), in)
}

func TestText_IgnoresCase(t *testing.T) {
	got := filter.Apply(activities(), filter.Text("SUSHI"))

	assert.Equal(t, []string{"Tsukiji Market Tour"}, names(got))
}

func TestBucketOf(t *testing.T) {
	tests := map[float64]filter.CostBucket{
		0:     filter.BucketFree,
		0.5:   filter.BucketBudget,
		30:    filter.BucketBudget,
		30.01: filter.BucketModerate,
		70:    filter.BucketModerate,
		71:    filter.BucketPremium,
	}
	for cost, want := range tests {
		assert.Equal(t, want, filter.BucketOf(cost), "cost %v", cost)
	}
}

func TestBucket(t *testing.T) {
	got := filter.Apply(activities(), filter.Bucket(filter.BucketModerate))

	assert.Equal(t, []string{"Tsukiji Market Tour"}, names(got))
}

func TestParseCostBucket(t *testing.T) {
	b, ok := filter.ParseCostBucket(" Premium")
	assert.True(t, ok)
	assert.Equal(t, filter.BucketPremium, b)

	_, ok = filter.ParseCostBucket("luxury")
	assert.False(t, ok)
}

func TestAnyAndAll(t *testing.T) {
	culture := filter.Category(domain.CategoryCulture)
	pricey := filter.Bucket(filter.BucketPremium)

	either := filter.Apply(activities(), filter.Any(culture, pricey))
	both := filter.Apply(activities(), filter.All(culture, pricey))

	assert.Equal(t, []string{"French Cooking Class", "Senso-ji Temple"}, names(either))
	assert.Empty(t, both)
	assert.Empty(t, filter.Apply(activities(), filter.Any[domain.Activity]()))
}

func TestTripPredicates(t *testing.T) {
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }
	trips := []domain.Trip{
		{Name: "Alps", StartDate: day(1, 10), EndDate: day(1, 20)},
		{Name: "Summer", StartDate: day(8, 1), EndDate: day(8, 10),
			Destinations: []domain.Destination{{City: "Kyoto", Country: "Japan"}}},
		{Name: "Spring break", Description: "japan cherry blossoms", StartDate: day(3, 1), EndDate: day(3, 9)},
	}
	now := day(6, 1)

	japan := filter.Apply(trips, filter.TripText("Japan"))
	upcoming := filter.Apply(trips, filter.TripStatus(stats.StatusUpcoming, now))
	both := filter.Apply(trips, filter.TripText("japan"), filter.TripStatus(stats.StatusCompleted, now))

	assert.Len(t, japan, 2)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "Summer", upcoming[0].Name)
	assert.Len(t, both, 1)
	assert.Equal(t, "Spring break", both[0].Name)
}

func TestCityPredicates(t *testing.T) {
	cities := []filter.City{
		{Name: "Paris", Country: "France", Region: "Europe"},
		{Name: "Tokyo", Country: "Japan", Region: "Asia"},
		{Name: "Bangkok", Country: "Thailand", Region: "Asia"},
	}

	assert.Len(t, filter.Apply(cities, filter.Region("asia")), 2)
	assert.Len(t, filter.Apply(cities, filter.CityText("fra")), 1)
	assert.Len(t, filter.Apply(cities, filter.CityText("an"), filter.Region("Asia")), 2)
}

func TestOn(t *testing.T) {
	type listing struct {
		City     string
		Activity domain.Activity
	}
	items := []listing{
		{City: "Paris", Activity: activities()[0]},
		{City: "Tokyo", Activity: activities()[4]},
	}
	inner := func(l listing) domain.Activity { return l.Activity }

	got := filter.Apply(items, filter.On(inner, filter.Category(domain.CategoryFood)))

	assert.Len(t, got, 1)
	assert.Equal(t, "Tokyo", got[0].City)
}
