package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"personal-notes/config"
	"personal-notes/handlers"
	appmw "personal-notes/middleware"
	"personal-notes/metrics"
	"personal-notes/repository"
	"personal-notes/validator"
)

type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Repo    repository.Repository
	Metrics *metrics.Metrics // nil disables /metrics and request timing
}

func NewRouter(d Deps) *chi.Mux {
	repo := d.Repo
	if d.Metrics != nil {
		repo = metrics.NewInstrumentedRepository(repo, d.Metrics)
	}
	notes := handlers.NewNotesHandler(repo, validator.New(), d.Logger)

	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmw.ResolveIdentity(appmw.HeaderIdentity(d.Config.IdentityHeader, d.Config.AnonymousUser)))
	r.Use(appmw.StructuredLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(chimw.Recoverer)
	r.Use(appmw.CORS(d.Config.AllowedOrigins))

	r.Get("/", handlers.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Post("/notes", notes.Create)
	r.Get("/notes", notes.List)
	r.Get("/notes/{id}", notes.Get)
	r.Put("/notes/{id}", notes.Update)
	r.Delete("/notes/{id}", notes.Delete)

	return r
}

// Run serves handler on cfg.Addr() until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", srv.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
