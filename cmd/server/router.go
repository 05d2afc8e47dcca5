package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/wonderwords/internal/api"
	apiMiddleware "github.com/phrazzld/wonderwords/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() (http.Handler, error) {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Trace IDs and a request-scoped logger
	r.Use(apiMiddleware.RequestLogger)

	// Create handlers using the application's services
	wordHandler := api.NewWordHandler(app.exploreService)
	uiHandler, err := api.NewUIHandler(app.exploreService)
	if err != nil {
		return nil, fmt.Errorf("failed to create UI handler: %w", err)
	}
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(
		app.sessions,
		app.config.Session.CookieName,
		app.config.Session.TTL(),
	)

	// Routes that read or write the word history
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Attach)

		// Page endpoints
		r.Get("/", uiHandler.Index)
		r.Post("/explore", uiHandler.Explore)

		// JSON endpoints
		r.Route("/api", func(r chi.Router) {
			r.Post("/words", wordHandler.ExploreWord)
			r.Get("/history", wordHandler.ListHistory)
			r.Get("/history/{word}", wordHandler.GetHistoryEntry)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
