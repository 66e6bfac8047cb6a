package middleware

import (
	"fmt"
	"net/http"
)

// NewMaxBodySizeHandler caps request bodies at limit bytes. A declared
// Content-Length over the limit is answered with 413 before the next handler
// runs; otherwise the body is wrapped in http.MaxBytesReader so streaming
// bodies fail on read once they pass the limit.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = fmt.Fprintf(w, `{"detail":"request body exceeds %d bytes"}`+"\n", limit)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
