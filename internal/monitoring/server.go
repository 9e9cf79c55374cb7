// internal/monitoring/server.go
package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qaharvest/qaharvest/internal/utils"
)

// Server exposes /metrics and /healthz while a run is in progress.
type Server struct {
	httpServer *http.Server
	logger     utils.Logger
}

// StartServer starts the metrics listener on addr in the background.
func StartServer(addr string, logger utils.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("metrics server failed: %v", err)
		}
	}()

	logger.Infof("metrics listening on %s", addr)
	return &Server{httpServer: srv, logger: logger}
}

// Shutdown stops the listener, waiting briefly for in-flight scrapes of /metrics.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warnf("metrics server shutdown: %v", err)
	}
}
