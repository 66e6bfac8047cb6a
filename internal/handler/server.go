// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (account.go, trip.go, ...) but share the same Server struct so they can
// reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// AccountServicer defines the signup/login operations the account handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without a database.
type AccountServicer interface {
	Signup(ctx context.Context, in domain.Signup) (domain.Account, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// TripServicer defines the trip operations the trip handlers depend on.
type TripServicer interface {
	List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleServicer defines the schedule operations the schedule handlers depend on.
type ScheduleServicer interface {
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.TripSchedule, error)
	Create(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	Update(ctx context.Context, s domain.TripSchedule) (domain.TripSchedule, error)
	Delete(ctx context.Context, id int64) error
}

// TourismFinder answers tourism lookups.
type TourismFinder interface {
	Find(ctx context.Context, q domain.TourismQuery) ([]domain.TourismRecord, error)
}

// Services groups the Server's dependencies. Nil members are allowed in
// tests that only exercise some routes.
type Services struct {
	Accounts  AccountServicer
	Trips     TripServicer
	Schedules ScheduleServicer
	Tourism   TourismFinder
}

// Server holds the dependencies shared by every handler.
type Server struct {
	accounts  AccountServicer
	trips     TripServicer
	schedules ScheduleServicer
	tourism   TourismFinder
	log       *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		accounts:  svc.Accounts,
		trips:     svc.Trips,
		schedules: svc.Schedules,
		tourism:   svc.Tourism,
		log:       log,
	}
}

// Routes returns a router with every endpoint registered. Paths keep their
// trailing slash because existing clients call them that way.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/sign_up/", s.SignUp)
	r.Post("/sign_in/", s.SignIn)
	r.Post("/token/refresh/", s.RefreshToken)

	r.Get("/tourism_list/", s.ListTourism)

	r.Get("/trip_list/", s.ListTrips)
	r.Post("/trip_list/", s.CreateTrip)
	r.Put("/trip_list/", s.UpdateTrip)
	r.Delete("/trip_list/", s.DeleteTrip)

	r.Get("/trip_schedule/", s.ListSchedules)
	r.Post("/trip_schedule/", s.CreateSchedule)
	r.Put("/trip_schedule/", s.UpdateSchedule)
	r.Delete("/trip_schedule/", s.DeleteSchedule)

	return r
}

// Handler is Routes as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.Routes()
}
