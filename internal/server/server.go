// Package server exposes brief generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the HTTP listener settings.
type Config struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// DefaultConfig listens on :8080.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// LoadConfig reads BRIEFSMITH_ADDR, falling back to defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("BRIEFSMITH_ADDR"); v != "" {
		cfg.Addr = v
	}
	return cfg
}

// Server routes HTTP requests to the brief and submission services.
type Server struct {
	cfg         Config
	briefs      service.BriefService
	submissions service.SubmissionService
	logger      *slog.Logger
}

func New(cfg Config, briefs service.BriefService, submissions service.SubmissionService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}
	return &Server{
		cfg:         cfg,
		briefs:      briefs,
		submissions: submissions,
		logger:      logger,
	}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/briefs", func(r chi.Router) {
			r.Post("/", s.handleGenerateBrief)
			r.Post("/export", s.handleExportBrief)
		})
		r.Post("/prompt", s.handlePrompt)
		r.Post("/submissions", s.handleSubmit)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
