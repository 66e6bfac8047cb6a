package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ScheduleRepo defines the persistence operations for TripSchedules.
type ScheduleRepo interface {
	// Create inserts a new schedule entry and returns the persisted record.
	Create(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)

	// GetByID retrieves a single schedule entry.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.TripSchedule, error)

	// List returns entries matching filter ordered by id.
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.TripSchedule, error)

	// Update overwrites the mutable fields of an entry.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	Update(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)

	// Delete removes an entry by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByTripID removes every entry attached to tripID and reports how
	// many rows went away. Zero rows is not an error.
	DeleteByTripID(ctx context.Context, tripID int64) (int64, error)
}

type pgScheduleRepo struct {
	db db
}

// NewScheduleRepo constructs a ScheduleRepo backed by the provided db connection.
func NewScheduleRepo(db db) ScheduleRepo {
	return &pgScheduleRepo{db: db}
}

const scheduleColumns = `id, username, trip_time, title, content, trip_id`

func (r *pgScheduleRepo) Create(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	const q = `
		INSERT INTO trip_schedule (username, trip_time, title, content, trip_id)
		VALUES (@username, @trip_time, @title, @content, @trip_id)
		RETURNING ` + scheduleColumns

	result, err := scanSchedule(r.db.QueryRow(ctx, q, scheduleArgs(s)))
	if err != nil {
		return domain.TripSchedule{}, fmt.Errorf("repo.ScheduleRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgScheduleRepo) GetByID(ctx context.Context, id int64) (domain.TripSchedule, error) {
	const q = `SELECT ` + scheduleColumns + ` FROM trip_schedule WHERE id = @id`

	result, err := scanSchedule(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TripSchedule{}, fmt.Errorf("repo.ScheduleRepo.GetByID: %w", err)
	}
	return result, nil
}

// List applies at most one filter: trip id first, then schedule id.
func (r *pgScheduleRepo) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.TripSchedule, error) {
	var (
		q    = `SELECT ` + scheduleColumns + ` FROM trip_schedule`
		args = pgx.NamedArgs{}
	)
	switch {
	case filter.TripID != nil:
		q += ` WHERE trip_id = @trip_id`
		args["trip_id"] = *filter.TripID
	case filter.ID != nil:
		q += ` WHERE id = @id`
		args["id"] = *filter.ID
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.List: %w", err)
	}
	defer rows.Close()

	out := []domain.TripSchedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ScheduleRepo.List: scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgScheduleRepo) Update(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	const q = `
		UPDATE trip_schedule
		SET username  = @username,
		    trip_time = @trip_time,
		    title     = @title,
		    content   = @content,
		    trip_id   = @trip_id
		WHERE id = @id
		RETURNING ` + scheduleColumns

	args := scheduleArgs(s)
	args["id"] = s.ID

	result, err := scanSchedule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripSchedule{}, fmt.Errorf("repo.ScheduleRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgScheduleRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM trip_schedule WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgScheduleRepo) DeleteByTripID(ctx context.Context, tripID int64) (int64, error) {
	const q = `DELETE FROM trip_schedule WHERE trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.ScheduleRepo.DeleteByTripID: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scheduleArgs(s domain.TripSchedule) pgx.NamedArgs {
	return pgx.NamedArgs{
		"username":  s.Username,
		"trip_time": s.TripTime,
		"title":     s.Title,
		"content":   s.Content, // nil becomes NULL
		"trip_id":   s.TripID,
	}
}

// scanSchedule maps a single database row into a domain.TripSchedule,
// converting the nullable content and trip_id columns to pointers.
func scanSchedule(s scanner) (domain.TripSchedule, error) {
	var (
		ts      domain.TripSchedule
		content pgtype.Text
		tripID  pgtype.Int8
	)

	err := s.Scan(&ts.ID, &ts.Username, &ts.TripTime, &ts.Title, &content, &tripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripSchedule{}, domain.ErrNotFound
		}
		return domain.TripSchedule{}, err
	}

	if content.Valid {
		c := content.String
		ts.Content = &c
	}
	if tripID.Valid {
		id := tripID.Int64
		ts.TripID = &id
	}
	return ts, nil
}
