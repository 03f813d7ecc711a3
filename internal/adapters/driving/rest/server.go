// Package rest exposes the POS directory over HTTP.
//
// Routes live under /api/v1/pos. Create and update accept lists so callers
// can seed the directory in one request. Error responses carry a single
// {"error": "..."} body; domain errors map onto 404, 409 and 422, malformed
// input onto 400.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/core/ports/driving"
	"github.com/seuhd/campus-coffee/internal/observability"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ReadinessFunc adapts a plain function into a ReadinessChecker.
type ReadinessFunc func(ctx context.Context) error

// CheckReadiness calls f.
func (f ReadinessFunc) CheckReadiness(ctx context.Context) error { return f(ctx) }

// Server exposes the directory API plus health, readiness and metrics routes.
type Server struct {
	httpServer *http.Server
	service    driving.PosService
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewServer wires the directory routes onto addr. A nil logger disables
// logging and a nil metrics registry records into a throwaway one.
func NewServer(addr string, service driving.PosService, ready ReadinessChecker, metrics *observability.Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}

	mux := http.NewServeMux()

	s := &Server{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           withRequestID(s.withLogging(mux)),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	mux.HandleFunc("GET /api/v1/pos", s.instrument("/api/v1/pos", s.handleListPos))
	mux.HandleFunc("POST /api/v1/pos", s.instrument("/api/v1/pos", s.handleCreatePos))
	mux.HandleFunc("PUT /api/v1/pos", s.instrument("/api/v1/pos", s.handleUpdatePos))
	mux.HandleFunc("DELETE /api/v1/pos", s.instrument("/api/v1/pos", s.handleClearPos))
	mux.HandleFunc("GET /api/v1/pos/{id}", s.instrument("/api/v1/pos/{id}", s.handleGetPos))
	mux.HandleFunc("POST /api/v1/pos/import/osm/{nodeID}", s.instrument("/api/v1/pos/import/osm/{nodeID}", s.handleImportPos))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if checker != nil {
			if err := checker.CheckReadiness(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // headers are out, nothing left to report
}
