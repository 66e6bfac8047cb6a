package service_test

import (
	"context"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs. A nil field panics, which flags an unexpected call.

type mockAccountRepo struct {
	create         func(ctx context.Context, a domain.Account) (domain.Account, error)
	getByUsername  func(ctx context.Context, username string) (domain.Account, error)
	touchLastLogin func(ctx context.Context, id int64, at time.Time) error
}

func (m *mockAccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	return m.create(ctx, a)
}
func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return m.getByUsername(ctx, username)
}
func (m *mockAccountRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.touchLastLogin(ctx, id, at)
}

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id int64) (domain.Trip, error)
	list    func(ctx context.Context, f domain.TripFilter) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, f domain.TripFilter) ([]domain.Trip, error) {
	return m.list(ctx, f)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockScheduleRepo struct {
	create         func(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	getByID        func(ctx context.Context, id int64) (domain.TripSchedule, error)
	list           func(ctx context.Context, f domain.ScheduleFilter) ([]domain.TripSchedule, error)
	update         func(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	delete         func(ctx context.Context, id int64) error
	deleteByTripID func(ctx context.Context, tripID int64) (int64, error)
}

func (m *mockScheduleRepo) Create(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	return m.create(ctx, s)
}
func (m *mockScheduleRepo) GetByID(ctx context.Context, id int64) (domain.TripSchedule, error) {
	return m.getByID(ctx, id)
}
func (m *mockScheduleRepo) List(ctx context.Context, f domain.ScheduleFilter) ([]domain.TripSchedule, error) {
	return m.list(ctx, f)
}
func (m *mockScheduleRepo) Update(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	return m.update(ctx, s)
}
func (m *mockScheduleRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockScheduleRepo) DeleteByTripID(ctx context.Context, tripID int64) (int64, error) {
	return m.deleteByTripID(ctx, tripID)
}

// fakeTx runs fn against the given repos and, like a real transaction,
// reports whether the work was committed or rolled back.
type fakeTx struct {
	repos      repo.Repos
	committed  bool
	rolledBack bool
}

func (f *fakeTx) InTx(_ context.Context, fn func(repo.Repos) error) error {
	if err := fn(f.repos); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}

// compile-time checks.
var (
	_ repo.AccountRepo  = (*mockAccountRepo)(nil)
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.ScheduleRepo = (*mockScheduleRepo)(nil)
)

// knownAccounts returns an account repo whose GetByUsername succeeds only for
// the listed names.
func knownAccounts(names ...string) *mockAccountRepo {
	return &mockAccountRepo{
		getByUsername: func(_ context.Context, username string) (domain.Account, error) {
			for i, n := range names {
				if n == username {
					return domain.Account{ID: int64(i + 1), Username: n}, nil
				}
			}
			return domain.Account{}, domain.ErrNotFound
		},
	}
}
