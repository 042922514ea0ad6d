package middleware

import (
	"net/http"
)

// CORS headers written on every response of the wrapped routes.
const (
	allowMethods = "POST, OPTIONS"
	allowHeaders = "Content-Type"
)

// NewCORSMiddleware sets the Access-Control-Allow-* headers and answers
// preflight OPTIONS requests with 200 and an empty body.
func NewCORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			if allowedOrigin != "*" {
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
