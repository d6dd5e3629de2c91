// Package server exposes the studio pipelines over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/your-org/content-studio/internal/auth"
	"github.com/your-org/content-studio/llm/services/studio"
)

// Server serves the content studio API
type Server struct {
	studio *studio.Studio
	auth   *auth.Manager
	router *mux.Router
	server *http.Server
	log    zerolog.Logger
}

// APIResponse is the envelope for all API responses
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// New creates the API server
func New(st *studio.Studio, authManager *auth.Manager, logger zerolog.Logger) *Server {
	s := &Server{
		studio: st,
		auth:   authManager,
		router: mux.NewRouter(),
		log:    logger.With().Str("component", "api").Logger(),
	}
	s.setupRoutes()
	return s
}

// Router returns the configured router, used directly in tests
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.loggingMiddleware)
	api.Use(s.corsMiddleware)

	// Unauthenticated
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/auth/token", s.handleToken).Methods("POST")

	// Authenticated pipeline routes
	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/content/create", s.handleCreateContent).Methods("POST")
	protected.HandleFunc("/content/review", s.handleReviewContent).Methods("POST")
	protected.HandleFunc("/seo/optimize", s.handleOptimizeSEO).Methods("POST")
	protected.HandleFunc("/seo/meta-tags", s.handleMetaTags).Methods("POST")
	protected.HandleFunc("/research", s.handleResearch).Methods("POST")
	protected.HandleFunc("/creative/ideas", s.handleCreativeIdeas).Methods("POST")
	protected.HandleFunc("/history", s.handleHistory).Methods("GET")
	protected.HandleFunc("/agents", s.handleAgents).Methods("GET")
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		s.log.Info().Msg("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	s.log.Info().Str("addr", addr).Msg("starting content studio API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}
