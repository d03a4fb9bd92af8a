// Package service contains the orchestration logic for the GlobeTrotter API.
// Services validate inputs, run the engine packages, and call the repo.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.Visibility == "" {
		trip.Visibility = domain.VisibilityPrivate
	}
	if err := trip.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns every trip owned by userID. The result is never nil.
func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// ListPaged returns one page of a user's trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListByUserPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Update overwrites a trip's own fields (name, description, dates, cover
// image, budget). The itinerary, owner and share state are kept from the
// stored trip; they change only through ItineraryService and Share.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	current, err := s.repo.GetByID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	next := current.Clone()
	next.Name = trip.Name
	next.Description = trip.Description
	next.StartDate = trip.StartDate
	next.EndDate = trip.EndDate
	next.CoverImage = trip.CoverImage
	next.Budget = trip.Budget
	if err := next.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and everything in it.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Share makes the trip readable through its public link.
func (s *TripService) Share(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.SetVisibility(ctx, id, domain.VisibilityPublic)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Share: %w", err)
	}
	return trip, nil
}

// Unshare makes the trip private again.
func (s *TripService) Unshare(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.SetVisibility(ctx, id, domain.VisibilityPrivate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Unshare: %w", err)
	}
	return trip, nil
}

// GetShared returns a trip through its public link.
// Private trips are reported as not found.
func (s *TripService) GetShared(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetPublic(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetShared: %w", err)
	}
	return trip, nil
}
