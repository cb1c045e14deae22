// Package http assembles the HTTP surface for noema's serve mode.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"noema/internal/handlers"
	"noema/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Index *service.Index
}

// NewRouter creates the HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(Logger)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Index))
		r.Method(http.MethodGet, "/search", handlers.NewSearchHandler(deps.Index))
		r.Method(http.MethodPost, "/reindex", handlers.NewReindexHandler(deps.Index))
	})

	return r
}
