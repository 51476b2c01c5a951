package http

import (
	"net/http"

	"github.com/atinyakov/nexus/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth      *AuthHandler
	Contact   *ContactHandler
	Dashboard *DashboardHandler
	// StaticDir is served for every non-/api GET.
	StaticDir string
}

// NewRouter constructs the HTTP handler for the Nexus API.
//
// Routes:
//
//	POST /api/login      → Auth.Login
//	POST /api/contact    → Contact.Submit
//	GET  /api/contacts   → Contact.List (BearerAuth, NoCache)
//	GET  /api/status     → Dashboard.Status
//	GET  /api/stats      → Dashboard.Stats
//	GET  /api/ping       → Ping
//	GET  /*              → StaticHandler(StaticDir)
//
// POST bodies must be JSON or URL-encoded forms.
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json", "application/x-www-form-urlencoded"))
			r.Post("/login", h.Auth.Login)
			r.Post("/contact", h.Contact.Submit)
		})

		r.Get("/status", h.Dashboard.Status)
		r.Get("/stats", h.Dashboard.Stats)
		r.Get("/ping", Ping)

		// Protected group: requires the admin bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(h.Auth.Auth))
			r.Use(chiMiddleware.NoCache)
			r.Get("/contacts", h.Contact.List)
		})

		r.NotFound(apiNotFound)
	})

	r.Get("/*", StaticHandler(h.StaticDir))

	return r
}
