// Package server exposes the beam analysis over HTTP
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sgostarter/i/l"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/config"
)

// Server serves the analysis API
type Server struct {
	cfg      *config.Config
	analysis *analysis.BeamAnalysis
	limiter  *IPRateLimiter
	logger   l.Wrapper
	router   *mux.Router
}

// New creates a server. A nil cfg uses config.Default.
func New(cfg *config.Config, logger l.Wrapper) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	s := &Server{
		cfg:      cfg,
		analysis: analysis.NewBeamAnalysis(),
		limiter:  NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		logger:   logger.WithFields(l.StringField(l.ClsKey, "server")),
		router:   mux.NewRouter(),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.logMiddleware, s.limiter.LimitMiddleware)

	api.HandleFunc("/conditions", s.handleConditions).Methods("GET")
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/analyze/all", s.handleAnalyzeAll).Methods("POST")
	api.HandleFunc("/reactions", s.handleReactions).Methods("POST")
	api.HandleFunc("/chart", s.handleChart).Methods("POST")
}

// Handler returns the root handler with CORS applied
func (s *Server) Handler() http.Handler {
	return CORS(s.router)
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.RunCleanup(ctx, cleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(l.StringField("addr", s.cfg.Addr)).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.WithFields(
			l.StringField("method", r.Method),
			l.StringField("path", r.URL.Path),
			l.IntField("status", rec.status),
			l.StringField("took", time.Since(start).String()),
		).Debug("request")
	})
}
