package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/internal/domain"
)

// detailBody is the generic error shape: {"detail": "..."}.
type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeStatus writes a bodiless response (404 on update/delete, 204).
func writeStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// writeValidation renders a *domain.ValidationError as {"field": ["msg"]}.
func writeValidation(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, ve.Fields)
		return
	}
	writeJSON(w, http.StatusBadRequest, detailBody{Detail: err.Error()})
}

// writeInternal logs err and returns a 500 that does not leak it.
func (s *Server) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "error", err)
	writeJSON(w, http.StatusInternalServerError, detailBody{Detail: "internal server error"})
}

// errEmptyBody marks a request that carried no body at all.
var errEmptyBody = errors.New("request body is empty")

// decodeBody reads a JSON object into dst. An empty body leaves dst at its
// zero value and returns errEmptyBody so callers can decide whether that is
// acceptable.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

// writeDecodeError maps a body decoding failure to 413 or 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge,
			detailBody{Detail: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
		return
	}
	writeJSON(w, http.StatusBadRequest, detailBody{Detail: "JSON parse error - " + err.Error()})
}

// lastQueryValue narrows a repeated parameter to its last occurrence, so
// ?region=a&region=b filters by "b" instead of failing to bind.
func lastQueryValue(r *http.Request, name string) (url.Values, bool) {
	vals, ok := r.URL.Query()[name]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	return url.Values{name: {vals[len(vals)-1]}}, true
}

// queryString binds an optional string query parameter. An absent parameter
// yields nil.
func queryString(r *http.Request, name string) (*string, error) {
	q, ok := lastQueryValue(r, name)
	if !ok {
		return nil, nil
	}
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return v, nil
}

// queryInt64 binds an optional integer query parameter. Absent or empty
// values yield nil.
func queryInt64(r *http.Request, name string) (*int64, error) {
	q, ok := lastQueryValue(r, name)
	if !ok || q.Get(name) == "" {
		return nil, nil
	}
	var v *int64
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return v, nil
}

// writeQueryError reports a malformed integer query parameter as a field error.
func writeQueryError(w http.ResponseWriter, name string) {
	writeJSON(w, http.StatusBadRequest, map[string][]string{
		name: {domain.MsgInvalidInteger},
	})
}
