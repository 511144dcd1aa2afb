// Package server собирает HTTP API леджера: маршруты chi, middleware и жизненный цикл http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/server/config"
	"github.com/iudanet/vaultkeeper/internal/server/handlers"
	"github.com/iudanet/vaultkeeper/internal/server/middleware"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

const (
	healthPath  = "/api/v1/health"
	sessionPath = "/api/v1/session"
	metricsPath = "/metrics"

	// sessionRateDivisor во сколько раз лимит на выдачу сессий строже общего
	sessionRateDivisor = 10
	minSessionRate     = 5

	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Store хранилище, которое нужно HTTP слою помимо леджера
type Store interface {
	handlers.Pinger
	storage.SessionStorage
}

// Deps зависимости сервера
type Deps struct {
	Ledger   handlers.Ledger
	Store    Store
	Registry *prometheus.Registry
	Logger   *slog.Logger
	Clock    clock.Clock
	Version  string
}

// Server HTTP сервер леджера
type Server struct {
	store   Store
	clock   clock.Clock
	logger  *slog.Logger
	limits  *middleware.RateLimits
	handler http.Handler
	listen  string
}

// New собирает маршруты и middleware. Registry и Clock могут быть nil.
func New(cfg config.Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		store:  deps.Store,
		clock:  deps.Clock,
		logger: deps.Logger,
		listen: cfg.Listen,
	}
	if cfg.RateLimit > 0 {
		s.limits = middleware.NewRateLimits(cfg.RateLimit, cfg.RateWindow, deps.Logger, middleware.PathRateLimit{
			Path:   sessionPath,
			Rate:   max(cfg.RateLimit/sessionRateDivisor, minSessionRate),
			Window: cfg.RateWindow,
		})
	}
	s.handler = s.routes(cfg, deps)
	return s
}

func (s *Server) routes(cfg config.Config, deps Deps) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:     []byte(cfg.JWTSecret),
		SessionTTL: cfg.SessionTTL,
	}

	sessionHandler := handlers.NewSessionHandler(deps.Logger, deps.Store, jwtConfig, deps.Clock)
	txHandler := handlers.NewTransactionHandler(deps.Logger, deps.Ledger)
	objectHandler := handlers.NewObjectHandler(deps.Logger, deps.Ledger)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.Store, deps.Ledger, deps.Version)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.LoggingMiddleware(deps.Logger, healthPath, metricsPath))
	r.Use(middleware.NewHTTPMetrics(deps.Registry).Middleware)
	if s.limits != nil {
		r.Use(s.limits.Middleware)
	}

	r.Method(http.MethodGet, metricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Post("/session", sessionHandler.Create)

		r.Get("/objects/{id}", objectHandler.Object)
		r.Get("/owners/{address}/objects", objectHandler.Owned)
		r.Get("/vaults/{id}/summary", objectHandler.Summary)
		r.Get("/vaults/{id}/fortune", objectHandler.Fortune)
		r.Get("/transactions/{digest}", txHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.Logger, jwtConfig, deps.Store))
			r.Post("/transactions", txHandler.Submit)
			r.Delete("/session", sessionHandler.Revoke)
		})
	})

	return r
}

// Handler корневой http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает адрес из конфигурации до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sweepSessions(sweepCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("ledger API listening", slog.String("addr", ln.Addr().String()))
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.stop()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down ledger API")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)
	s.stop()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) stop() {
	if s.limits != nil {
		s.limits.Stop()
	}
}

// sweepSessions периодически удаляет истекшие сессии
func (s *Server) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepSessions(ctx)
		}
	}
}

// SweepSessions удаляет сессии, истекшие к текущему моменту
func (s *Server) SweepSessions(ctx context.Context) {
	n, err := s.store.DeleteExpiredSessions(ctx, s.clock.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete expired sessions", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "expired sessions deleted", slog.Int("count", n))
	}
}
