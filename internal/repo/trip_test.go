package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
	"github.com/pkordes/globetrotter/backend/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by that transaction. The transaction is rolled back when
// the test finishes.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	return repo.NewTripRepo(testutil.BeginTx(t))
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// tripFixture returns a two-stop trip owned by userID.
// Callers can override individual fields after calling this function.
func tripFixture(userID uuid.UUID) domain.Trip {
	return domain.Trip{
		UserID:      userID,
		Name:        "Italy by Rail",
		Description: "Rome then Florence",
		StartDate:   day(6, 1),
		EndDate:     day(6, 10),
		Destinations: []domain.Destination{
			{
				City: "Rome", Country: "Italy", StartDate: day(6, 1), EndDate: day(6, 5),
				Budget: ptr(400.0),
				Activities: []domain.Activity{
					{Name: "Colosseum", Time: "09:00", DurationHours: ptr(3.0), Cost: 18, Category: domain.CategoryCulture, Day: 1},
					{Name: "Trastevere dinner", Cost: 45, Category: domain.CategoryFood},
				},
			},
			{City: "Florence", Country: "Italy", StartDate: day(6, 6), EndDate: day(6, 10)},
		},
		Budget: &domain.Budget{Total: 1500, Food: 300},
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture(uuid.New())
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.UserID, got.UserID)
	assert.Equal(t, input.Name, got.Name)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	assert.Equal(t, domain.VisibilityPrivate, got.Visibility, "visibility defaults to private")
	assert.Equal(t, input.Budget, got.Budget)
	assert.Equal(t, input.Destinations, got.Destinations, "itinerary should round-trip through JSONB")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NoBudgetNoDestinations(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture(uuid.New())
	input.Budget = nil
	input.Destinations = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Budget)
	assert.Empty(t, got.Destinations)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destinations, got.Destinations)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListByUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	t1 := tripFixture(owner)
	t1.Name = "First Trip"
	t2 := tripFixture(owner)
	t2.Name = "Second Trip"
	t2.StartDate = t1.StartDate.AddDate(0, 1, 0)
	t2.EndDate = t1.EndDate.AddDate(0, 1, 0)
	other := tripFixture(uuid.New())

	for _, tr := range []domain.Trip{t1, t2, other} {
		_, err := r.Create(ctx, tr)
		require.NoError(t, err)
	}

	trips, err := r.ListByUser(ctx, owner)

	require.NoError(t, err)
	require.Len(t, trips, 2, "only the owner's trips are listed")
	assert.Equal(t, "Second Trip", trips[0].Name, "later start comes first")
	assert.Equal(t, "First Trip", trips[1].Name)
}

func TestTripRepo_ListByUserPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	for i := range 5 {
		tr := tripFixture(owner)
		tr.StartDate = tr.StartDate.AddDate(0, 0, i)
		_, err := r.Create(ctx, tr)
		require.NoError(t, err)
	}

	page, total, err := r.ListByUserPaged(ctx, owner, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.True(t, page[0].StartDate.Equal(day(6, 3)), "page 2 starts at the third most recent trip")
}

func TestTripRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	created.Name = "Updated Name"
	created.Destinations = created.Destinations[1:]
	created.Budget = nil

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Name", updated.Name)
	require.Len(t, updated.Destinations, 1)
	assert.Equal(t, "Florence", updated.Destinations[0].City)
	assert.Nil(t, updated.Budget)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestTripRepo_Update_StaleSnapshotConflicts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	stale := created
	stale.UpdatedAt = created.UpdatedAt.Add(-time.Minute)
	stale.Name = "Lost write"

	_, err = r.Update(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name, "a conflicting update must not be written")
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)

	ghost := tripFixture(uuid.New())
	ghost.ID = uuid.New()
	ghost.UpdatedAt = time.Now()

	_, err := r.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_SetVisibility_GetPublic(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	_, err = r.GetPublic(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "private trips are not readable through the share link")

	shared, err := r.SetVisibility(ctx, created.ID, domain.VisibilityPublic)
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPublic, shared.Visibility)

	got, err := r.GetPublic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestTripRepo_SetVisibility_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.SetVisibility(context.Background(), uuid.New(), domain.VisibilityPublic)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
