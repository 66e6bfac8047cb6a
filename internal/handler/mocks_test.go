package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
)

// Test doubles for the handler's service interfaces.
// Set only the method fields your test needs.

type mockAccountServicer struct {
	signup  func(ctx context.Context, in domain.Signup) (domain.Account, error)
	login   func(ctx context.Context, username, password string) (domain.Session, error)
	refresh func(ctx context.Context, token string) (string, error)
}

func (m *mockAccountServicer) Signup(ctx context.Context, in domain.Signup) (domain.Account, error) {
	return m.signup(ctx, in)
}
func (m *mockAccountServicer) Login(ctx context.Context, u, p string) (domain.Session, error) {
	return m.login(ctx, u, p)
}
func (m *mockAccountServicer) Refresh(ctx context.Context, token string) (string, error) {
	return m.refresh(ctx, token)
}

type mockTripServicer struct {
	list   func(ctx context.Context, f domain.TripFilter) ([]domain.Trip, error)
	create func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	update func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockTripServicer) List(ctx context.Context, f domain.TripFilter) ([]domain.Trip, error) {
	return m.list(ctx, f)
}
func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockScheduleServicer struct {
	list   func(ctx context.Context, f domain.ScheduleFilter) ([]domain.TripSchedule, error)
	create func(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	update func(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockScheduleServicer) List(ctx context.Context, f domain.ScheduleFilter) ([]domain.TripSchedule, error) {
	return m.list(ctx, f)
}
func (m *mockScheduleServicer) Create(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	return m.create(ctx, s)
}
func (m *mockScheduleServicer) Update(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error) {
	return m.update(ctx, s)
}
func (m *mockScheduleServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTourismFinder struct {
	find func(ctx context.Context, q domain.TourismQuery) ([]domain.TourismRecord, error)
}

func (m *mockTourismFinder) Find(ctx context.Context, q domain.TourismQuery) ([]domain.TourismRecord, error) {
	return m.find(ctx, q)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.AccountServicer  = (*mockAccountServicer)(nil)
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.ScheduleServicer = (*mockScheduleServicer)(nil)
	_ handler.TourismFinder    = (*mockTourismFinder)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks the same way main.go
// wires the real services. Logs are discarded.
func newHTTPHandler(svc handler.Services) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(svc, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func svcAccounts(a *mockAccountServicer) handler.Services {
	return handler.Services{Accounts: a}
}

func svcTrips(tr *mockTripServicer) handler.Services {
	return handler.Services{Trips: tr}
}

func svcSchedules(s *mockScheduleServicer) handler.Services {
	return handler.Services{Schedules: s}
}

func fieldErr(field, msg string) error {
	v := domain.NewValidationError()
	v.Add(field, msg)
	return v
}
