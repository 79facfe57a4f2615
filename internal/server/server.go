// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"diet-client/pkg/logger"
)

// Server exposes local operational endpoints for the client: a health
// check and the Prometheus metrics collected by the request executor.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(port string, logger *logger.Logger) *Server {
	mux := http.NewServeMux()

	// Expose request/retry counters
	mux.Handle("/metrics", promhttp.Handler())

	// Add health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server: httpServer,
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting ops server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping ops server")
	return s.server.Shutdown(ctx)
}
