package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ScheduleService implements business logic for TripSchedule operations.
// It holds the trip and account repos because every write must point at an
// existing owner and, optionally, an existing trip.
type ScheduleService struct {
	schedules repo.ScheduleRepo
	trips     repo.TripRepo
	accounts  repo.AccountRepo
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(schedules repo.ScheduleRepo, trips repo.TripRepo, accounts repo.AccountRepo) *ScheduleService {
	return &ScheduleService{schedules: schedules, trips: trips, accounts: accounts}
}

// List returns schedules matching filter. Filtering by trip returns an empty
// slice when nothing matches; filtering by id alone returns
// domain.ErrNotFound when that entry does not exist.
func (s *ScheduleService) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.TripSchedule, error) {
	if filter.TripID == nil && filter.ID != nil {
		one, err := s.schedules.GetByID(ctx, *filter.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ScheduleService.List: %w", err)
		}
		return []domain.TripSchedule{one}, nil
	}

	out, err := s.schedules.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.List: %w", err)
	}
	if out == nil {
		return []domain.TripSchedule{}, nil
	}
	return out, nil
}

// Create validates and persists a new schedule entry.
func (s *ScheduleService) Create(ctx context.Context, sched domain.TripSchedule) (domain.TripSchedule, error) {
	sched, err := s.validate(ctx, sched)
	if err != nil {
		return domain.TripSchedule{}, err
	}
	created, err := s.schedules.Create(ctx, sched)
	if err != nil {
		return domain.TripSchedule{}, fmt.Errorf("service.ScheduleService.Create: %w", err)
	}
	return created, nil
}

// Update replaces every mutable field of an existing entry.
// Returns domain.ErrNotFound before validating when the entry does not exist.
func (s *ScheduleService) Update(ctx context.Context, sched domain.TripSchedule) (domain.TripSchedule, error) {
	if _, err := s.schedules.GetByID(ctx, sched.ID); err != nil {
		return domain.TripSchedule{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	sched, err := s.validate(ctx, sched)
	if err != nil {
		return domain.TripSchedule{}, err
	}
	updated, err := s.schedules.Update(ctx, sched)
	if err != nil {
		return domain.TripSchedule{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes one entry. Returns domain.ErrNotFound if it does not exist.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.schedules.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	return nil
}

// validate trims the entry's fields and checks them:
//   - Username must name an existing account.
//   - TripTime is required.
//   - Title must be non-empty and at most MaxTitleLen characters.
//   - TripID, when set, must name an existing trip.
func (s *ScheduleService) validate(ctx context.Context, sched domain.TripSchedule) (domain.TripSchedule, error) {
	sched.Username = strings.TrimSpace(sched.Username)
	sched.Title = strings.TrimSpace(sched.Title)

	v := domain.NewValidationError()
	if err := checkAccount(ctx, s.accounts, v, sched.Username); err != nil {
		return domain.TripSchedule{}, fmt.Errorf("service.ScheduleService.validate: %w", err)
	}
	if sched.TripTime.IsZero() {
		v.Add("trip_time", domain.MsgRequired)
	}
	checkRequiredMax(v, "title", sched.Title, domain.MaxTitleLen)

	if sched.TripID != nil {
		if _, err := s.trips.GetByID(ctx, *sched.TripID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return domain.TripSchedule{}, fmt.Errorf("service.ScheduleService.validate: %w", err)
			}
			v.Add("trip", invalidPK(*sched.TripID))
		}
	}
	return sched, v.OrNil()
}
