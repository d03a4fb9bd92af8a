package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/budget"
	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// InsightService computes the derived views of stored trips: per-trip
// statistics, the budget breakdown, and a user's portfolio summary.
// Nothing it returns is persisted.
type InsightService struct {
	repo        repo.TripRepo
	assumptions budget.Assumptions
	now         func() time.Time
}

// NewInsightService constructs an InsightService. now supplies the reference
// instant for lifecycle status; pass time.Now in production.
func NewInsightService(r repo.TripRepo, a budget.Assumptions, now func() time.Time) *InsightService {
	return &InsightService{repo: r, assumptions: a, now: now}
}

// TripInsight pairs a trip with its derived statistics.
type TripInsight struct {
	Trip  domain.Trip
	Stats stats.Derived
}

// Stats returns the derived statistics of one trip.
func (s *InsightService) Stats(ctx context.Context, tripID uuid.UUID) (TripInsight, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return TripInsight{}, fmt.Errorf("service.InsightService.Stats: %w", err)
	}
	return TripInsight{Trip: trip, Stats: stats.Derive(trip, s.now())}, nil
}

// Budget returns the expected cost breakdown of one trip.
func (s *InsightService) Budget(ctx context.Context, tripID uuid.UUID) (budget.Breakdown, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return budget.Breakdown{}, fmt.Errorf("service.InsightService.Budget: %w", err)
	}
	return budget.Calculate(trip, s.assumptions), nil
}

// Portfolio summarizes every trip a user owns.
func (s *InsightService) Portfolio(ctx context.Context, userID uuid.UUID) (stats.Portfolio, error) {
	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return stats.Portfolio{}, fmt.Errorf("service.InsightService.Portfolio: %w", err)
	}
	return stats.Summarize(trips, s.now()), nil
}
