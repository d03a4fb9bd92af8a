// Package handler implements the HTTP handlers for the GlobeTrotter API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, itinerary.go, insight.go, ...) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/budget"
	"github.com/pkordes/globetrotter/backend/internal/catalog"
	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
	"github.com/pkordes/globetrotter/backend/internal/itinerary"
	"github.com/pkordes/globetrotter/backend/internal/service"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer package, so handler tests can inject
// mocks without touching the database or the service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Share(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Unshare(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	GetShared(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// ItineraryServicer defines the itinerary edits the handlers depend on.
type ItineraryServicer interface {
	AddDestination(ctx context.Context, tripID uuid.UUID, d domain.Destination) (domain.Trip, error)
	UpdateDestination(ctx context.Context, tripID uuid.UUID, index int, d domain.Destination) (domain.Trip, error)
	RemoveDestination(ctx context.Context, tripID uuid.UUID, index int) (domain.Trip, error)
	ReorderDestinations(ctx context.Context, tripID uuid.UUID, order []int) (domain.Trip, error)
	ReplaceAllDestinations(ctx context.Context, tripID uuid.UUID, ds []domain.Destination) (domain.Trip, error)
	AddActivity(ctx context.Context, tripID uuid.UUID, destIndex int, a domain.Activity) (domain.Trip, error)
	RemoveActivity(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int) (domain.Trip, error)
	MoveActivity(ctx context.Context, tripID uuid.UUID, fromDest, actIndex, toDest int) (domain.Trip, error)
	EditActivityField(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int, field itinerary.Field, value string) (domain.Trip, error)
	ApplyPlan(ctx context.Context, tripID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop) (domain.Trip, error)
	AcceptPlan(ctx context.Context, userID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop, start, end time.Time) (domain.Trip, error)
}

// InsightServicer defines the derived views the handlers depend on.
type InsightServicer interface {
	Stats(ctx context.Context, tripID uuid.UUID) (service.TripInsight, error)
	Budget(ctx context.Context, tripID uuid.UUID) (budget.Breakdown, error)
	Portfolio(ctx context.Context, userID uuid.UUID) (stats.Portfolio, error)
}

// SearchServicer defines the list-view searches the handlers depend on.
type SearchServicer interface {
	SearchActivities(q service.ActivityQuery) []catalog.Listing
	SearchCities(q service.CityQuery) []filter.City
	FilterTrips(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the services behind every endpoint.
// Mount it in main.go via Server.Routes.
type Server struct {
	trips     TripServicer
	itinerary ItineraryServicer
	insights  InsightServicer
	search    SearchServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
// Tests may pass nil for services their endpoints do not touch.
func NewServer(trips TripServicer, itin ItineraryServicer, insights InsightServicer, search SearchServicer, export ExportServicer) *Server {
	return &Server{trips: trips, itinerary: itin, insights: insights, search: search, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes builds the chi router for every endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/share", s.ShareTrip)
			r.Delete("/share", s.UnshareTrip)
			r.Get("/stats", s.GetTripStats)
			r.Get("/budget", s.GetTripBudget)
			r.Get("/export", s.GetExport)
			r.Post("/plan", s.ApplyPlan)

			r.Route("/destinations", func(r chi.Router) {
				r.Post("/", s.AddDestination)
				r.Put("/", s.ReplaceDestinations)
				r.Post("/reorder", s.ReorderDestinations)

				r.Route("/{destIndex}", func(r chi.Router) {
					r.Put("/", s.UpdateDestination)
					r.Delete("/", s.RemoveDestination)
					r.Post("/activities", s.AddActivity)
					r.Delete("/activities/{actIndex}", s.RemoveActivity)
					r.Patch("/activities/{actIndex}", s.EditActivity)
					r.Post("/activities/{actIndex}/move", s.MoveActivity)
				})
			})
		})
	})

	r.Get("/shared/{tripID}", s.GetSharedTrip)
	r.Post("/plans/accept", s.AcceptPlan)
	r.Get("/users/{userID}/trips", s.ListUserTrips)
	r.Get("/users/{userID}/stats", s.GetPortfolio)
	r.Get("/search/activities", s.SearchActivities)
	r.Get("/search/cities", s.SearchCities)

	return r
}
