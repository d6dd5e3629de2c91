package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/your-org/content-studio/internal/auth"
)

// loggingMiddleware logs every request with its duration
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// corsMiddleware allows cross-origin requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+auth.APIKeyHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authMiddleware accepts either the static API key or a Bearer token
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get(auth.APIKeyHeader); key != "" {
			if err := s.auth.CheckAPIKey(key); err != nil {
				s.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API Key")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if _, err := s.auth.VerifyToken(token); err != nil {
				s.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		s.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing credentials")
	})
}
