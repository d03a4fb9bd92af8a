// Package repo contains all database access logic for the GlobeTrotter API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// A trip's destinations and activities are stored with the trip row, so every
// write replaces the whole itinerary in one statement.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByUser returns every trip owned by userID, most recent start first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// ListByUserPaged returns one page of ListByUser plus the total row count.
	ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. trip.UpdatedAt must be the value read with the trip:
	// if the row changed since, domain.ErrConflict is returned and nothing is
	// written. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetVisibility changes who can read the trip through its share link.
	SetVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (domain.Trip, error)

	// GetPublic retrieves a trip only if it has been shared.
	// Private trips are reported as domain.ErrNotFound.
	GetPublic(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, name, description, start_date, end_date, cover_image,
		destinations, budget, visibility, ai_generated, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, name, description, start_date, end_date, cover_image,
		                   destinations, budget, visibility, ai_generated)
		VALUES (@user_id, @name, @description, @start_date, @end_date, @cover_image,
		        @destinations, @budget, @visibility, @ai_generated)
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns a user's trips ordered by start_date descending.
func (r *pgTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY start_date DESC, created_at DESC`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	return trips, nil
}

// ListByUserPaged returns one page of a user's trips and the total count.
func (r *pgTripRepo) ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips WHERE user_id = @user_id`
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUserPaged: count: %w", err)
	}

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUserPaged: %w", err)
	}
	return trips, total, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name         = @name,
		    description  = @description,
		    start_date   = @start_date,
		    end_date     = @end_date,
		    cover_image  = @cover_image,
		    destinations = @destinations,
		    budget       = @budget,
		    visibility   = @visibility,
		    ai_generated = @ai_generated,
		    updated_at   = now()
		WHERE id = @id AND updated_at = @updated_at
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	args["id"] = trip.ID
	args["updated_at"] = trip.UpdatedAt

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if errors.Is(err, domain.ErrNotFound) {
		err = r.missingOrStale(ctx, trip.ID)
	}
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// SetVisibility updates only the visibility column.
func (r *pgTripRepo) SetVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET visibility = @visibility,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "visibility": string(v)}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.SetVisibility: %w", err)
	}
	return result, nil
}

// GetPublic retrieves a shared trip by primary key.
func (r *pgTripRepo) GetPublic(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id AND visibility = 'public'`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetPublic: %w", err)
	}
	return result, nil
}

// missingOrStale explains why a guarded UPDATE matched no row.
func (r *pgTripRepo) missingOrStale(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = @id)`, pgx.NamedArgs{"id": id}).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}
	return domain.ErrNotFound
}

func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// tripArgs maps the writable columns of a trip to named query arguments.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	dests, err := encodeDestinations(trip.Destinations)
	if err != nil {
		return nil, err
	}
	budget, err := encodeBudget(trip.Budget)
	if err != nil {
		return nil, err
	}
	visibility := trip.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	args := pgx.NamedArgs{
		"user_id":      trip.UserID,
		"name":         trip.Name,
		"description":  trip.Description,
		"start_date":   domain.DateOf(trip.StartDate),
		"end_date":     domain.DateOf(trip.EndDate),
		"cover_image":  trip.CoverImage,
		"destinations": dests,
		"budget":       nil, // NULL when no budget was declared
		"visibility":   string(visibility),
		"ai_generated": trip.AIGenerated,
	}
	if budget != nil {
		args["budget"] = budget
	}
	return args, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t          domain.Trip
		id         pgtype.UUID
		userID     pgtype.UUID
		startDate  pgtype.Date
		endDate    pgtype.Date
		dests      []byte
		budget     []byte
		visibility string
	)

	err := s.Scan(&id, &userID, &t.Name, &t.Description, &startDate, &endDate, &t.CoverImage,
		&dests, &budget, &visibility, &t.AIGenerated, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time
	t.Visibility = domain.Visibility(visibility)

	if t.Destinations, err = decodeDestinations(dests); err != nil {
		return domain.Trip{}, fmt.Errorf("decode destinations: %w", err)
	}
	if t.Budget, err = decodeBudget(budget); err != nil {
		return domain.Trip{}, fmt.Errorf("decode budget: %w", err)
	}
	return t, nil
}
