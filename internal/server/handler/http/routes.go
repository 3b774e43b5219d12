// Package http provides HTTP routing and middleware configuration
// for the FitTrack sync backend.
package http

import (
	"net/http"

	"github.com/okoshkina/fittrack/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the FitTrack
// API. It applies JSON content-type enforcement, request logging, and
// bearer-token authentication, and mounts the registration, login, and
// snapshot endpoints under /api.
//
// Routes:
//
//	POST /api/register   → authHandler.Register
//	POST /api/login      → authHandler.Login
//	POST /api/sync       → syncHandler.Sync     (token required)
//	GET  /api/snapshot   → syncHandler.Snapshot (token required)
func NewRouter(
	authHandler *AuthHandler,
	syncHandler *SyncHandler,
	tokens middleware.TokenValidator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Enforce bearer-token authentication
	r.Use(middleware.TokenAuth(tokens))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Post("/sync", syncHandler.Sync)
			r.Get("/snapshot", syncHandler.Snapshot)
		})
	})

	return r
}
