package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/itinerary"
	"github.com/pkordes/globetrotter/backend/internal/service"
)

// versionedRepo keeps one trip in memory and rejects updates carrying a stale
// UpdatedAt, like the Postgres repo does.
type versionedRepo struct {
	mockTripRepo
	stored  domain.Trip
	updates int

	// beforeUpdate, when set, runs once before the next update is checked,
	// simulating another writer getting in first.
	beforeUpdate func(stored *domain.Trip)
}

func newVersionedRepo(trip domain.Trip) *versionedRepo {
	trip.UpdatedAt = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	r := &versionedRepo{stored: trip}
	r.getByID = func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
		if id != r.stored.ID {
			return domain.Trip{}, domain.ErrNotFound
		}
		return r.stored.Clone(), nil
	}
	r.update = func(_ context.Context, t domain.Trip) (domain.Trip, error) {
		r.updates++
		if r.beforeUpdate != nil {
			r.beforeUpdate(&r.stored)
			r.beforeUpdate = nil
		}
		if !t.UpdatedAt.Equal(r.stored.UpdatedAt) {
			return domain.Trip{}, domain.ErrConflict
		}
		t.UpdatedAt = t.UpdatedAt.Add(time.Second)
		r.stored = t.Clone()
		return t, nil
	}
	return r
}

func TestItineraryService_AddDestination(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)

	got, err := svc.AddDestination(context.Background(), r.stored.ID, domain.Destination{
		City: "Venice", StartDate: date(6, 5), EndDate: date(6, 5),
	})

	require.NoError(t, err)
	require.Len(t, got.Destinations, 3)
	assert.Equal(t, "Venice", got.Destinations[2].City)
	assert.Equal(t, got.Destinations, r.stored.Destinations, "the edit is persisted")
}

func TestItineraryService_ReplaysEditAfterConflict(t *testing.T) {
	r := newVersionedRepo(validTrip())
	r.beforeUpdate = func(stored *domain.Trip) {
		stored.Destinations = append(stored.Destinations, domain.Destination{
			City: "Venice", StartDate: date(6, 5), EndDate: date(6, 5),
		})
		stored.UpdatedAt = stored.UpdatedAt.Add(time.Minute)
	}
	svc := service.NewItineraryService(r)

	got, err := svc.AddActivity(context.Background(), r.stored.ID, 1, domain.Activity{
		Name: "Uffizi", Cost: 25, Category: domain.CategoryCulture,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, r.updates, "one lost race, one successful replay")
	require.Len(t, got.Destinations, 3, "the concurrent writer's stop is kept")
	require.Len(t, got.Destinations[1].Activities, 1)
	assert.Equal(t, "Uffizi", got.Destinations[1].Activities[0].Name)
}

func TestItineraryService_GivesUpAfterRepeatedConflicts(t *testing.T) {
	r := echoRepo()
	stored := validTrip()
	r.getByID = func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return stored, nil }
	updates := 0
	r.update = func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
		updates++
		return domain.Trip{}, domain.ErrConflict
	}
	svc := service.NewItineraryService(r)

	_, err := svc.RemoveDestination(context.Background(), stored.ID, 0)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, updates)
}

func TestItineraryService_EngineErrorIsNotPersisted(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)
	ctx := context.Background()

	_, err := svc.ReorderDestinations(ctx, r.stored.ID, []int{0, 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPermutation)

	_, err = svc.RemoveActivity(ctx, r.stored.ID, 0, 9)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = svc.AddActivity(ctx, r.stored.ID, 0, domain.Activity{Name: "Gelato", Cost: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Zero(t, r.updates, "failed edits never reach the repo")
}

func TestItineraryService_TripNotFound(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)

	_, err := svc.AddDestination(context.Background(), uuid.New(), domain.Destination{
		City: "Venice", StartDate: date(6, 5), EndDate: date(6, 5),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_ReorderAndMove(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)
	ctx := context.Background()

	got, err := svc.ReorderDestinations(ctx, r.stored.ID, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, "Florence", got.Destinations[0].City)

	got, err = svc.MoveActivity(ctx, r.stored.ID, 1, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got.Destinations[1].Activities, 1)
	require.Len(t, got.Destinations[0].Activities, 1)
	assert.Equal(t, "Colosseum", got.Destinations[0].Activities[0].Name)
}

func TestItineraryService_UpdateAndReplaceDestinations(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)
	ctx := context.Background()

	got, err := svc.UpdateDestination(ctx, r.stored.ID, 0, domain.Destination{
		City: "Roma", Country: "Italy", StartDate: date(6, 1), EndDate: date(6, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Roma", got.Destinations[0].City)
	assert.Len(t, got.Destinations[0].Activities, 2, "activities survive a stop update")

	got, err = svc.ReplaceAllDestinations(ctx, r.stored.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Destinations)
}

func TestItineraryService_EditActivityField(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)

	got, err := svc.EditActivityField(context.Background(), r.stored.ID, 0, 1, itinerary.FieldCost, "32.5")

	require.NoError(t, err)
	assert.Equal(t, 32.5, got.Destinations[0].Activities[1].Cost)
}

func generatedPlan() domain.GeneratedPlan {
	return domain.GeneratedPlan{
		TripName:        "Kyoto Temples",
		Overview:        "Three slow days",
		EstimatedBudget: &domain.PlanBudget{Total: ptr(600.0)},
		Days: []domain.PlanDay{
			{DayNumber: 1, Date: "2025-09-01", Activities: []domain.PlanActivity{
				{Time: "09:00", Type: "culture", Title: "Fushimi Inari", Cost: ptr(0.0)},
			}},
			{DayNumber: 2, Date: "2025-09-02", Activities: []domain.PlanActivity{
				{Time: "12:00", Type: "food", Title: "Nishiki Market", Cost: ptr(30.0)},
			}},
			{DayNumber: 3, Date: "2025-09-03"},
		},
	}
}

func TestItineraryService_ApplyPlan(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)

	got, err := svc.ApplyPlan(context.Background(), r.stored.ID, generatedPlan(), domain.PlanStop{City: "Kyoto", Country: "Japan"})

	require.NoError(t, err)
	require.Len(t, got.Destinations, 1)
	assert.Equal(t, "Kyoto", got.Destinations[0].City)
	assert.Len(t, got.Destinations[0].Activities, 2)
}

func TestItineraryService_ApplyPlan_BadShape(t *testing.T) {
	r := newVersionedRepo(validTrip())
	svc := service.NewItineraryService(r)

	_, err := svc.ApplyPlan(context.Background(), r.stored.ID, domain.GeneratedPlan{}, domain.PlanStop{City: "Kyoto"})

	assert.ErrorIs(t, err, domain.ErrExternalDataShape)
	assert.Zero(t, r.updates)
	assert.Len(t, r.stored.Destinations, 2, "the stored itinerary is untouched")
}

func TestItineraryService_AcceptPlan(t *testing.T) {
	owner := uuid.New()
	var created domain.Trip
	r := &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			created = t
			t.ID = uuid.New()
			return t, nil
		},
	}
	svc := service.NewItineraryService(r)

	got, err := svc.AcceptPlan(context.Background(), owner, generatedPlan(), domain.PlanStop{City: "Kyoto", Country: "Japan"}, time.Time{}, time.Time{})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, "Kyoto Temples", created.Name)
	assert.True(t, created.AIGenerated)
	assert.True(t, created.StartDate.Equal(date(9, 1)))
	assert.True(t, created.EndDate.Equal(date(9, 3)))
	require.NotNil(t, created.Budget)
	assert.Equal(t, 600.0, created.Budget.Total)
}
