package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record with its id.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns trips matching filter ordered by id.
	List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	// Schedules still pointing at the trip make this fail with a foreign key error.
	Delete(ctx context.Context, id int64) error
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

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trip (title, username)
		VALUES (@title, @username)
		RETURNING id, title, username`

	args := pgx.NamedArgs{
		"title":    trip.Title,
		"username": trip.Username,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `SELECT id, title, username FROM trip WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns trips, optionally restricted to one owner.
// A NULL @username disables the filter so one statement covers both cases.
func (r *pgTripRepo) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	const q = `
		SELECT id, title, username
		FROM trip
		WHERE (@username::text IS NULL OR username = @username)
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"username": filter.Username})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trip
		SET title    = @title,
		    username = @username
		WHERE id = @id
		RETURNING id, title, username`

	args := pgx.NamedArgs{
		"id":       trip.ID,
		"title":    trip.Title,
		"username": trip.Username,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM trip WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip

	err := s.Scan(&t.ID, &t.Title, &t.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	return t, nil
}
