// Package api provides the HTTP API server and handlers for the Harmoura application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/harmoura/harmoura-server/internal/http/response"
	"github.com/harmoura/harmoura-server/internal/service"
)

// Services groups all business logic services used by the API server.
type Services struct {
	Catalog        *service.CatalogService
	Stats          *service.StatsService
	Recommendation *service.RecommendationService
	Activity       *service.ActivityService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, logger *slog.Logger) *Server {
	s := &Server{
		services: services,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Harmoura API", "1.0.0")
	humaConfig.DocsPath = "/docs"
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(identityMiddleware)
}

// setupRoutes configures all HTTP routes. Catalog reads are registered
// through huma; the listening-statistics endpoints are plain chi handlers.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.registerSongRoutes()

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/plays", s.handleRecordPlay)
		r.Get("/recommendations", s.handleRecommendations)

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/{id}/open", s.handleRecordOpen)
			r.Get("/activity", s.handleListRecentAndFrequent)
			r.Get("/frequent", s.handleListFrequent)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", s.handleGetProfile)
			r.Put("/portrait", s.handleUpdatePortrait)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
