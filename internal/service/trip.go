// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Transactor runs fn against repos bound to one database transaction.
// *repo.TxRunner satisfies it.
type Transactor interface {
	InTx(ctx context.Context, fn func(repo.Repos) error) error
}

// TripService implements business logic for Trip operations.
type TripService struct {
	trips    repo.TripRepo
	accounts repo.AccountRepo
	tx       Transactor
}

// NewTripService constructs a TripService.
func NewTripService(trips repo.TripRepo, accounts repo.AccountRepo, tx Transactor) *TripService {
	return &TripService{trips: trips, accounts: accounts, tx: tx}
}

// List returns trips matching filter. Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip, err := s.validate(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// Update replaces the title and owner of an existing trip.
// Returns domain.ErrNotFound before validating when the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.trips.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip, err := s.validate(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and every schedule attached to it in one
// transaction. If either step fails nothing is removed.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	if _, err := s.trips.GetByID(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}

	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Schedules.DeleteByTripID(ctx, id); err != nil {
			return err
		}
		return r.Trips.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validate trims the trip's fields and checks them:
//   - Title must be non-empty and at most MaxTitleLen characters.
//   - Username must name an existing account.
func (s *TripService) validate(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Title = strings.TrimSpace(trip.Title)
	trip.Username = strings.TrimSpace(trip.Username)

	v := domain.NewValidationError()
	checkRequiredMax(v, "title", trip.Title, domain.MaxTitleLen)
	if err := checkAccount(ctx, s.accounts, v, trip.Username); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.validate: %w", err)
	}
	return trip, v.OrNil()
}
