// Package server exposes the drawdown solver over HTTP.
//
// Endpoints:
//
//	POST /api/v1/solve    - solve a scenario, return radii and inflows
//	POST /api/v1/profile  - sample the drawdown curve (JSON or SVG)
//	GET  /healthz         - liveness probe
//
// Solve results are cached by a content hash of the request body, so
// repeated submissions of the same scenario skip the numerical solve.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/groundwaterkit/pitflow/pkg/cache"
)

// DefaultCacheTTL bounds how long a solve result stays cached.
const DefaultCacheTTL = time.Hour

// Server routes HTTP requests to the solver.
type Server struct {
	router *chi.Mux
	logger *log.Logger
	cache  cache.Cache
	ttl    time.Duration
}

// New builds a server with the given logger and result cache. A nil
// cache disables caching. A zero ttl uses [DefaultCacheTTL].
func New(logger *log.Logger, c cache.Cache, ttl time.Duration) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
		cache:  c,
		ttl:    ttl,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/profile", s.handleProfile)
	})
}

// Handler returns the routing tree, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a UUID, echoed in the X-Request-ID
// response header and attached to log lines.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", r.Context().Value(requestIDKey),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
