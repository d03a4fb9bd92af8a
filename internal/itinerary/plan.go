package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// PlanActivities folds the days of a generated plan into a flat activity list.
// Missing costs default to 0 and missing or unknown types to unclassified.
// Each activity records the day it was planned for; days without a number
// take their position in the plan.
//
// A plan whose days are missing or empty, or a suggestion without a title,
// cannot be repaired by defaults and is rejected with domain.ErrExternalDataShape.
func PlanActivities(plan domain.GeneratedPlan) ([]domain.Activity, error) {
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("itinerary.PlanActivities: %w: plan has no days", domain.ErrExternalDataShape)
	}
	var out []domain.Activity
	for i, day := range plan.Days {
		dayNumber := day.DayNumber
		if dayNumber <= 0 {
			dayNumber = i + 1
		}
		for j, pa := range day.Activities {
			if strings.TrimSpace(pa.Title) == "" {
				return nil, fmt.Errorf("itinerary.PlanActivities: %w: days[%d].activities[%d].title is missing",
					domain.ErrExternalDataShape, i, j)
			}
			category, ok := domain.ParseCategory(pa.Type)
			if !ok {
				category = domain.CategoryUnclassified
			}
			var cost float64
			if pa.Cost != nil {
				cost = *pa.Cost
			}
			out = append(out, domain.Activity{
				Name:        strings.TrimSpace(pa.Title),
				Description: pa.Description,
				Time:        pa.Time,
				Cost:        cost,
				Category:    category,
				Location:    pa.Location,
				Day:         dayNumber,
			})
		}
	}
	return out, nil
}

// ApplyPlan replaces the trip's destinations with a single stop for the
// plan's city holding every suggested activity. The swap is atomic: an
// invalid suggestion leaves nothing applied. When stop has no city, the
// trip's current first destination names it.
func ApplyPlan(trip domain.Trip, plan domain.GeneratedPlan, stop domain.PlanStop) (domain.Trip, error) {
	activities, err := PlanActivities(plan)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.ApplyPlan: %w", err)
	}
	if stop.City == "" && len(trip.Destinations) > 0 {
		stop.City, stop.Country = trip.Destinations[0].City, trip.Destinations[0].Country
	}
	dest := domain.Destination{
		City:       stop.City,
		Country:    stop.Country,
		StartDate:  trip.StartDate,
		EndDate:    trip.EndDate,
		Activities: activities,
	}
	out, err := ReplaceAllDestinations(trip, []domain.Destination{dest})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.ApplyPlan: %w", err)
	}
	return out, nil
}

// NewTripFromPlan builds a new trip for userID from an accepted plan.
// Zero start or end dates are taken from the plan's own day dates.
func NewTripFromPlan(userID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop, start, end time.Time) (domain.Trip, error) {
	if len(plan.Days) == 0 {
		return domain.Trip{}, fmt.Errorf("itinerary.NewTripFromPlan: %w: plan has no days", domain.ErrExternalDataShape)
	}
	if start.IsZero() {
		first, err := time.Parse(domain.DateLayout, plan.Days[0].Date)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("itinerary.NewTripFromPlan: %w: days[0].date %q is not an ISO date",
				domain.ErrExternalDataShape, plan.Days[0].Date)
		}
		start = first
	}
	if end.IsZero() {
		end = domain.AddDays(start, len(plan.Days)-1)
	}

	name := strings.TrimSpace(plan.TripName)
	if name == "" {
		name = strings.TrimSpace(stop.City + " trip")
	}
	trip := domain.Trip{
		UserID:      userID,
		Name:        name,
		Description: plan.Overview,
		StartDate:   domain.DateOf(start),
		EndDate:     domain.DateOf(end),
		Visibility:  domain.VisibilityPrivate,
		AIGenerated: true,
	}
	if eb := plan.EstimatedBudget; eb != nil && eb.Total != nil {
		trip.Budget = &domain.Budget{Total: *eb.Total}
		if eb.Activities != nil {
			trip.Budget.Activities = *eb.Activities
		}
		if eb.Food != nil {
			trip.Budget.Food = *eb.Food
		}
	}

	trip, err := ApplyPlan(trip, plan, stop)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.NewTripFromPlan: %w", err)
	}
	if err := trip.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.NewTripFromPlan: %w", err)
	}
	return trip, nil
}
