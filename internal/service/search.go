package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/catalog"
	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
	"github.com/pkordes/globetrotter/backend/internal/repo"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// ActivityQuery selects catalog activities. Zero fields do not filter.
type ActivityQuery struct {
	Text     string
	City     string
	Category domain.Category
	Bucket   filter.CostBucket
	MaxCost  *float64
}

// CityQuery selects catalog cities. Zero fields do not filter.
type CityQuery struct {
	Text   string
	Region string
}

// TripQuery selects a user's trips. Zero fields do not filter.
type TripQuery struct {
	Text   string
	Status stats.Status
}

// SearchService answers list-view searches over the discovery catalog and
// over a user's own trips.
type SearchService struct {
	catalog *catalog.Catalog
	repo    repo.TripRepo
	now     func() time.Time
}

// NewSearchService constructs a SearchService.
func NewSearchService(c *catalog.Catalog, r repo.TripRepo, now func() time.Time) *SearchService {
	return &SearchService{catalog: c, repo: r, now: now}
}

// SearchActivities returns the catalog activities matching q in catalog order.
func (s *SearchService) SearchActivities(q ActivityQuery) []catalog.Listing {
	var preds []filter.Predicate[catalog.Listing]
	if q.Text = strings.TrimSpace(q.Text); q.Text != "" {
		preds = append(preds, catalog.OfActivity(filter.Text(q.Text)))
	}
	if q.City = strings.TrimSpace(q.City); q.City != "" {
		preds = append(preds, catalog.InCity(q.City))
	}
	if q.Category != "" {
		preds = append(preds, catalog.OfActivity(filter.Category(q.Category)))
	}
	if q.Bucket != "" {
		preds = append(preds, catalog.OfActivity(filter.Bucket(q.Bucket)))
	}
	if q.MaxCost != nil {
		preds = append(preds, catalog.OfActivity(filter.MaxCost(*q.MaxCost)))
	}
	return filter.Apply(s.catalog.Activities(), preds...)
}

// SearchCities returns the catalog cities matching q in catalog order.
func (s *SearchService) SearchCities(q CityQuery) []filter.City {
	var preds []filter.Predicate[filter.City]
	if q.Text = strings.TrimSpace(q.Text); q.Text != "" {
		preds = append(preds, filter.CityText(q.Text))
	}
	if q.Region = strings.TrimSpace(q.Region); q.Region != "" {
		preds = append(preds, filter.Region(q.Region))
	}
	return filter.Apply(s.catalog.Cities(), preds...)
}

// FilterTrips returns the user's trips matching q, most recent start first.
func (s *SearchService) FilterTrips(ctx context.Context, userID uuid.UUID, q TripQuery) ([]domain.Trip, error) {
	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.FilterTrips: %w", err)
	}

	var preds []filter.Predicate[domain.Trip]
	if q.Text = strings.TrimSpace(q.Text); q.Text != "" {
		preds = append(preds, filter.TripText(q.Text))
	}
	if q.Status != "" {
		preds = append(preds, filter.TripStatus(q.Status, s.now()))
	}
	return filter.Apply(trips, preds...), nil
}
