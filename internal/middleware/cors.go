package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns the CORS layer for the API. With no configured origins the
// API is wide open — the public portfolio site is served from a different
// origin and reads are meant to be public anyway. Set CORS_ORIGINS to pin
// it down.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}

	if len(allowedOrigins) > 0 {
		opts.AllowedOrigins = allowedOrigins
	} else {
		opts.AllowedOrigins = []string{"*"}
	}

	return cors.New(opts).Handler
}
