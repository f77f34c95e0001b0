package internal

import (
	"context"
	stderrors "errors"
	"fmt"
	"guild-warden/repositories"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// DebugServer exposes /metrics and a plain-text /inspect dump of the record tables.
// It runs as a supervised worker.
type DebugServer struct {
	log      *slog.Logger
	port     int
	store    repositories.IRecordStore
	gatherer prometheus.Gatherer
}

func NewDebugServer(log *slog.Logger, port int, store repositories.IRecordStore, gatherer prometheus.Gatherer) *DebugServer {
	return &DebugServer{log: log, port: port, store: store, gatherer: gatherer}
}

func (s *DebugServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	router.Get("/inspect", func(w http.ResponseWriter, r *http.Request) {
		var tables []repositories.Table
		if table := r.URL.Query().Get("table"); table != "" {
			tables = append(tables, repositories.Table(table))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := RenderTables(w, s.store, tables...); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	})
	return router
}

func (s *DebugServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting debug server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("debug server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("debug server shutdown: %w", err)
	}
	s.log.Info("Debug server stopped")
	return nil
}
