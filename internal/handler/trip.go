package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// tripRequest is the body of POST, PUT, and DELETE on /trip_list/.
// ID is ignored on POST and identifies the target on PUT and DELETE.
type tripRequest struct {
	ID       json.RawMessage `json:"id"`
	Title    string          `json:"title"`
	Username string          `json:"username"`
}

// ListTrips handles GET /trip_list/?username=.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	username, err := queryString(r, "username")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: err.Error()})
		return
	}
	if username != nil && *username == "" {
		username = nil
	}

	trips, err := s.trips.List(r.Context(), domain.TripFilter{Username: username})
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trip_list/.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	trip, err := s.trips.Create(r.Context(), domain.Trip{Title: req.Title, Username: req.Username})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		s.writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// UpdateTrip handles PUT /trip_list/. The body replaces the trip named by
// its id; a missing or unknown id is a bodiless 404.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	trip, err := s.trips.Update(r.Context(), domain.Trip{ID: id, Title: req.Title, Username: req.Username})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, trip)
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	default:
		s.writeInternal(w, r, err)
	}
}

// DeleteTrip handles DELETE /trip_list/ with {"id": n} in the body.
// The trip's schedules are removed with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	err := s.trips.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeStatus(w, http.StatusNoContent)
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound)
	default:
		s.writeInternal(w, r, err)
	}
}
