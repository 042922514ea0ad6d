package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/spotlight-site/internal/api"
	apiMiddleware "github.com/phrazzld/spotlight-site/internal/api/middleware"
)

func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	spotlightHandler := api.NewSpotlightHandler(app.preset, app.logger)
	cors := apiMiddleware.NewCORSMiddleware(app.config.CORS.AllowedOrigin)

	r.Route("/api", func(r chi.Router) {
		// Every method reaches the contact handler so it can answer 405 itself.
		r.With(cors).HandleFunc("/contact", contactHandler.Contact)
		r.Get("/spotlight/frame", spotlightHandler.Frame)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
