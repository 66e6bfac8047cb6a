package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// scheduleRequest keeps id, trip_time, and trip raw so a mistyped value is
// reported against its field.
type scheduleRequest struct {
	ID       json.RawMessage `json:"id"`
	Username string          `json:"username"`
	TripTime json.RawMessage `json:"trip_time"`
	Title    string          `json:"title"`
	Content  *string         `json:"content"`
	Trip     json.RawMessage `json:"trip"`
}

func (req scheduleRequest) toDomain() (domain.TripSchedule, error) {
	v := domain.NewValidationError()
	sched := domain.TripSchedule{
		Username: req.Username,
		Title:    req.Title,
		Content:  req.Content,
		TripID:   optionalInt64(v, "trip", domain.MsgInvalidPK, req.Trip),
	}
	if id := optionalInt64(v, "id", domain.MsgInvalidInteger, req.ID); id != nil {
		sched.ID = *id
	}
	if t := optionalTime(v, "trip_time", req.TripTime); t != nil {
		sched.TripTime = *t
	}
	return sched, v.OrNil()
}

// ListSchedules handles GET /trip_schedule/?trip=&id=.
// When trip is given it wins over id. An id that matches nothing is a 404.
func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	tripID, err := queryInt64(r, "trip")
	if err != nil {
		writeQueryError(w, "trip")
		return
	}
	id, err := queryInt64(r, "id")
	if err != nil {
		writeQueryError(w, "id")
		return
	}

	scheds, err := s.schedules.List(r.Context(), domain.ScheduleFilter{TripID: tripID, ID: id})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, scheds)
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, detailBody{Detail: "Not found."})
	default:
		s.writeInternal(w, r, err)
	}
}

// CreateSchedule handles POST /trip_schedule/.
func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	req.ID = nil
	in, err := req.toDomain()
	if err != nil {
		writeValidation(w, err)
		return
	}
	sched, err := s.schedules.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		s.writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sched)
}

// UpdateSchedule handles PUT /trip_schedule/.
func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	if isNull(req.ID) {
		writeStatus(w, http.StatusNotFound)
		return
	}
	in, err := req.toDomain()
	if err != nil {
		writeValidation(w, err)
		return
	}

	sched, err := s.schedules.Update(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, sched)
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	default:
		s.writeInternal(w, r, err)
	}
}

// DeleteSchedule handles DELETE /trip_schedule/ with {"id": n} in the body.
func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	err := s.schedules.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeStatus(w, http.StatusNoContent)
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound)
	default:
		s.writeInternal(w, r, err)
	}
}
