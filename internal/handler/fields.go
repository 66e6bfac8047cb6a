package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Body fields that clients send with loose typing are decoded as raw JSON
// and converted here, so a bad value becomes a field error instead of a
// parse failure for the whole body.

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// optionalInt64 accepts a JSON integer or a string holding one.
// Absent and null give nil; anything else records msg under field.
func optionalInt64(v *domain.ValidationError, field, msg string, raw json.RawMessage) *int64 {
	if isNull(raw) {
		return nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return &n
		}
	}
	v.Add(field, msg)
	return nil
}

// optionalTime accepts an RFC 3339 string. Absent and null give nil.
func optionalTime(v *domain.ValidationError, field string, raw json.RawMessage) *time.Time {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		v.Add(field, domain.MsgInvalidDatetime)
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		v.Add(field, domain.MsgInvalidDatetime)
		return nil
	}
	return &t
}

// bodyID resolves the id naming the target of a PUT or DELETE. A missing id
// answers 404 and a malformed one 400; in both cases ok is false and the
// response has been written.
func bodyID(w http.ResponseWriter, raw json.RawMessage) (id int64, ok bool) {
	v := domain.NewValidationError()
	p := optionalInt64(v, "id", domain.MsgInvalidInteger, raw)
	if err := v.OrNil(); err != nil {
		writeValidation(w, err)
		return 0, false
	}
	if p == nil {
		writeStatus(w, http.StatusNotFound)
		return 0, false
	}
	return *p, true
}
