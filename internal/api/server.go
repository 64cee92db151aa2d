// Package api provides the REST API server for the meta analytics service.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ramonehamilton/mtg-meta-service/internal/api/handlers"
	"github.com/ramonehamilton/mtg-meta-service/internal/config"
)

// Server represents the REST API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	port       int
}

// NewServer creates a new API server around the analytics service.
func NewServer(cfg *config.Config, service handlers.MetaService) *Server {
	s := &Server{
		router: chi.NewRouter(),
		port:   cfg.Server.Port,
	}
	s.setupMiddleware(cfg.Server.AllowedOrigins)
	s.setupRoutes(service, cfg.Analytics)
	return s
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(service handlers.MetaService, limits config.AnalyticsConfig) {
	s.router.Get("/health", s.healthCheck)

	metaHandler := handlers.NewMetaHandler(service, limits)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/meta", func(r chi.Router) {
			r.Get("/archetypes", metaHandler.GetArchetypeRankings)
			r.Get("/matchups", metaHandler.GetMatchupMatrix)
		})
	})
}

// healthCheck responds to health probes.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","timestamp":%q}`, time.Now().UTC().Format(time.RFC3339))
}

// Router returns the underlying router, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins listening on the configured port. It blocks until the server
// stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
