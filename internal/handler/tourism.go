package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ListTourism handles GET /tourism_list/?region=&tourist_spot=.
// Failures are reported as {"error": "..."} with status 500, which the web
// client displays verbatim.
func (s *Server) ListTourism(w http.ResponseWriter, r *http.Request) {
	region, err := queryString(r, "region")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: err.Error()})
		return
	}
	spot, err := queryString(r, "tourist_spot")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: err.Error()})
		return
	}

	records, err := s.tourism.Find(r.Context(), domain.TourismQuery{Region: region, Spot: spot})
	if err != nil {
		s.log.ErrorContext(r.Context(), "tourism lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}
