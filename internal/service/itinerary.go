package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/itinerary"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// maxEditAttempts bounds how often an edit is replayed on a fresh snapshot
// after losing a race with another writer.
const maxEditAttempts = 3

// ItineraryService applies itinerary edits to stored trips. Every edit loads
// the latest trip, runs the matching engine function on it and stores the
// result. If another writer got in between, the edit is replayed on the new
// snapshot, so edits are never silently lost.
type ItineraryService struct {
	repo repo.TripRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided TripRepo.
func NewItineraryService(r repo.TripRepo) *ItineraryService {
	return &ItineraryService{repo: r}
}

// AddDestination appends a stop to the trip.
func (s *ItineraryService) AddDestination(ctx context.Context, tripID uuid.UUID, d domain.Destination) (domain.Trip, error) {
	return s.edit(ctx, "AddDestination", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.AddDestination(t, d)
	})
}

// UpdateDestination replaces a stop's own fields, keeping its activities.
func (s *ItineraryService) UpdateDestination(ctx context.Context, tripID uuid.UUID, index int, d domain.Destination) (domain.Trip, error) {
	return s.edit(ctx, "UpdateDestination", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.UpdateDestination(t, index, d)
	})
}

// RemoveDestination deletes the stop at index together with its activities.
func (s *ItineraryService) RemoveDestination(ctx context.Context, tripID uuid.UUID, index int) (domain.Trip, error) {
	return s.edit(ctx, "RemoveDestination", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.RemoveDestination(t, index)
	})
}

// ReorderDestinations rearranges the stops; order[i] is the old index of the
// stop that ends up at position i.
func (s *ItineraryService) ReorderDestinations(ctx context.Context, tripID uuid.UUID, order []int) (domain.Trip, error) {
	return s.edit(ctx, "ReorderDestinations", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.ReorderDestinations(t, order)
	})
}

// ReplaceAllDestinations swaps the whole itinerary in one write.
func (s *ItineraryService) ReplaceAllDestinations(ctx context.Context, tripID uuid.UUID, ds []domain.Destination) (domain.Trip, error) {
	return s.edit(ctx, "ReplaceAllDestinations", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.ReplaceAllDestinations(t, ds)
	})
}

// AddActivity appends an activity to the stop at destIndex.
func (s *ItineraryService) AddActivity(ctx context.Context, tripID uuid.UUID, destIndex int, a domain.Activity) (domain.Trip, error) {
	return s.edit(ctx, "AddActivity", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.AddActivity(t, destIndex, a)
	})
}

// RemoveActivity deletes one activity.
func (s *ItineraryService) RemoveActivity(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int) (domain.Trip, error) {
	return s.edit(ctx, "RemoveActivity", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.RemoveActivity(t, destIndex, actIndex)
	})
}

// MoveActivity moves an activity to the end of another stop.
func (s *ItineraryService) MoveActivity(ctx context.Context, tripID uuid.UUID, fromDest, actIndex, toDest int) (domain.Trip, error) {
	return s.edit(ctx, "MoveActivity", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.MoveActivity(t, fromDest, actIndex, toDest)
	})
}

// EditActivityField updates one attribute of an activity from its raw text value.
func (s *ItineraryService) EditActivityField(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int, field itinerary.Field, value string) (domain.Trip, error) {
	return s.edit(ctx, "EditActivityField", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.EditActivityField(t, destIndex, actIndex, field, value)
	})
}

// ApplyPlan replaces the trip's itinerary with a generated plan for stop.
func (s *ItineraryService) ApplyPlan(ctx context.Context, tripID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop) (domain.Trip, error) {
	return s.edit(ctx, "ApplyPlan", tripID, func(t domain.Trip) (domain.Trip, error) {
		return itinerary.ApplyPlan(t, plan, stop)
	})
}

// AcceptPlan stores a generated plan as a new trip owned by userID.
// Zero start or end dates are taken from the plan.
func (s *ItineraryService) AcceptPlan(ctx context.Context, userID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop, start, end time.Time) (domain.Trip, error) {
	trip, err := itinerary.NewTripFromPlan(userID, plan, stop, start, end)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.AcceptPlan: %w", err)
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.AcceptPlan: %w", err)
	}
	return created, nil
}

// edit runs fn against the latest stored trip and persists the result.
func (s *ItineraryService) edit(ctx context.Context, op string, tripID uuid.UUID, fn func(domain.Trip) (domain.Trip, error)) (domain.Trip, error) {
	var err error
	for range maxEditAttempts {
		var current, next, saved domain.Trip

		current, err = s.repo.GetByID(ctx, tripID)
		if err != nil {
			break
		}
		next, err = fn(current)
		if err != nil {
			break
		}
		saved, err = s.repo.Update(ctx, next)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	return domain.Trip{}, fmt.Errorf("service.ItineraryService.%s: %w", op, err)
}
