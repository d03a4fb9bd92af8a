package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/budget"
	"github.com/pkordes/globetrotter/backend/internal/catalog"
	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
	"github.com/pkordes/globetrotter/backend/internal/handler"
	"github.com/pkordes/globetrotter/backend/internal/itinerary"
	"github.com/pkordes/globetrotter/backend/internal/service"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// ---- mock TripServicer -----------------------------------------------------

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	listPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
	share     func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	unshare   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	getShared func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) Share(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.share(ctx, id)
}
func (m *mockTripServicer) Unshare(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.unshare(ctx, id)
}
func (m *mockTripServicer) GetShared(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getShared(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- mock ItineraryServicer ------------------------------------------------

type mockItineraryServicer struct {
	addDestination    func(ctx context.Context, tripID uuid.UUID, d domain.Destination) (domain.Trip, error)
	updateDestination func(ctx context.Context, tripID uuid.UUID, index int, d domain.Destination) (domain.Trip, error)
	removeDestination func(ctx context.Context, tripID uuid.UUID, index int) (domain.Trip, error)
	reorder           func(ctx context.Context, tripID uuid.UUID, order []int) (domain.Trip, error)
	replaceAll        func(ctx context.Context, tripID uuid.UUID, ds []domain.Destination) (domain.Trip, error)
	addActivity       func(ctx context.Context, tripID uuid.UUID, destIndex int, a domain.Activity) (domain.Trip, error)
	removeActivity    func(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int) (domain.Trip, error)
	moveActivity      func(ctx context.Context, tripID uuid.UUID, fromDest, actIndex, toDest int) (domain.Trip, error)
	editActivityField func(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int, field itinerary.Field, value string) (domain.Trip, error)
	applyPlan         func(ctx context.Context, tripID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop) (domain.Trip, error)
	acceptPlan        func(ctx context.Context, userID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop, start, end time.Time) (domain.Trip, error)
}

func (m *mockItineraryServicer) AddDestination(ctx context.Context, tripID uuid.UUID, d domain.Destination) (domain.Trip, error) {
	return m.addDestination(ctx, tripID, d)
}
func (m *mockItineraryServicer) UpdateDestination(ctx context.Context, tripID uuid.UUID, index int, d domain.Destination) (domain.Trip, error) {
	return m.updateDestination(ctx, tripID, index, d)
}
func (m *mockItineraryServicer) RemoveDestination(ctx context.Context, tripID uuid.UUID, index int) (domain.Trip, error) {
	return m.removeDestination(ctx, tripID, index)
}
func (m *mockItineraryServicer) ReorderDestinations(ctx context.Context, tripID uuid.UUID, order []int) (domain.Trip, error) {
	return m.reorder(ctx, tripID, order)
}
func (m *mockItineraryServicer) ReplaceAllDestinations(ctx context.Context, tripID uuid.UUID, ds []domain.Destination) (domain.Trip, error) {
	return m.replaceAll(ctx, tripID, ds)
}
func (m *mockItineraryServicer) AddActivity(ctx context.Context, tripID uuid.UUID, destIndex int, a domain.Activity) (domain.Trip, error) {
	return m.addActivity(ctx, tripID, destIndex, a)
}
func (m *mockItineraryServicer) RemoveActivity(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int) (domain.Trip, error) {
	return m.removeActivity(ctx, tripID, destIndex, actIndex)
}
func (m *mockItineraryServicer) MoveActivity(ctx context.Context, tripID uuid.UUID, fromDest, actIndex, toDest int) (domain.Trip, error) {
	return m.moveActivity(ctx, tripID, fromDest, actIndex, toDest)
}
func (m *mockItineraryServicer) EditActivityField(ctx context.Context, tripID uuid.UUID, destIndex, actIndex int, field itinerary.Field, value string) (domain.Trip, error) {
	return m.editActivityField(ctx, tripID, destIndex, actIndex, field, value)
}
func (m *mockItineraryServicer) ApplyPlan(ctx context.Context, tripID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop) (domain.Trip, error) {
	return m.applyPlan(ctx, tripID, plan, stop)
}
func (m *mockItineraryServicer) AcceptPlan(ctx context.Context, userID uuid.UUID, plan domain.GeneratedPlan, stop domain.PlanStop, start, end time.Time) (domain.Trip, error) {
	return m.acceptPlan(ctx, userID, plan, stop, start, end)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

// ---- mock InsightServicer --------------------------------------------------

type mockInsightServicer struct {
	stats     func(ctx context.Context, tripID uuid.UUID) (service.TripInsight, error)
	budget    func(ctx context.Context, tripID uuid.UUID) (budget.Breakdown, error)
	portfolio func(ctx context.Context, userID uuid.UUID) (stats.Portfolio, error)
}

func (m *mockInsightServicer) Stats(ctx context.Context, tripID uuid.UUID) (service.TripInsight, error) {
	return m.stats(ctx, tripID)
}
func (m *mockInsightServicer) Budget(ctx context.Context, tripID uuid.UUID) (budget.Breakdown, error) {
	return m.budget(ctx, tripID)
}
func (m *mockInsightServicer) Portfolio(ctx context.Context, userID uuid.UUID) (stats.Portfolio, error) {
	return m.portfolio(ctx, userID)
}

var _ handler.InsightServicer = (*mockInsightServicer)(nil)

// ---- mock SearchServicer ---------------------------------------------------

type mockSearchServicer struct {
	searchActivities func(q service.ActivityQuery) []catalog.Listing
	searchCities     func(q service.CityQuery) []filter.City
	filterTrips      func(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error)
}

func (m *mockSearchServicer) SearchActivities(q service.ActivityQuery) []catalog.Listing {
	return m.searchActivities(q)
}
func (m *mockSearchServicer) SearchCities(q service.CityQuery) []filter.City {
	return m.searchCities(q)
}
func (m *mockSearchServicer) FilterTrips(ctx context.Context, userID uuid.UUID, q service.TripQuery) ([]domain.Trip, error) {
	return m.filterTrips(ctx, userID, q)
}

var _ handler.SearchServicer = (*mockSearchServicer)(nil)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, tripID)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// do sends one request through srv's router, the same router main.go mounts.
func do(t *testing.T, srv *handler.Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// errorCode returns the "code" of an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handler.ErrorResponse](t, rec).Error.Code
}

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// tripFixture is a two-stop trip with two activities in the first stop.
func tripFixture() domain.Trip {
	return domain.Trip{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Name:       "Italy by Rail",
		StartDate:  date(6, 1),
		EndDate:    date(6, 5),
		Visibility: domain.VisibilityPrivate,
		Budget:     &domain.Budget{Total: 1500},
		Destinations: []domain.Destination{
			{
				City: "Rome", Country: "Italy", StartDate: date(6, 1), EndDate: date(6, 3),
				Activities: []domain.Activity{
					{Name: "Colosseum", Cost: 18, Category: domain.CategorySightseeing, Day: 1},
					{Name: "Vatican Museums", Cost: 20, Category: domain.CategoryCulture, Day: 2},
				},
			},
			{City: "Florence", Country: "Italy", StartDate: date(6, 4), EndDate: date(6, 5)},
		},
		CreatedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}
