// Package middleware holds the HTTP middleware wrapped around the trip
// planner router.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler lets the browser client call the API from allowedOrigins.
// Entries are full origins (scheme + host, no trailing slash). Authorization
// is allowed so the client can send its bearer token.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
