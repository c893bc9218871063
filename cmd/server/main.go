package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"personnummer/internal/admin"
	identityhandler "personnummer/internal/identity/handler"
	identitymetrics "personnummer/internal/identity/metrics"
	identityservice "personnummer/internal/identity/service"
	"personnummer/internal/platform/config"
	"personnummer/internal/platform/httpserver"
	"personnummer/internal/platform/logger"
	"personnummer/internal/platform/metrics"
	ratelimitmetrics "personnummer/internal/ratelimit/metrics"
	ratelimitmw "personnummer/internal/ratelimit/middleware"
	"personnummer/internal/ratelimit/models"
	"personnummer/internal/ratelimit/store/bucket"
	"personnummer/pkg/platform/audit/publisher"
	"personnummer/pkg/platform/audit/store/memory"
	"personnummer/pkg/platform/httputil"
	"personnummer/pkg/platform/middleware/metadata"
	"personnummer/pkg/platform/middleware/requestid"
	"personnummer/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Parsing rules live in pkg/personnummer.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	registry := metrics.NewRegistry()

	auditOpts := []publisher.Option{publisher.WithLogger(log)}
	if cfg.AuditBuffer > 0 {
		auditOpts = append(auditOpts, publisher.WithAsyncBuffer(cfg.AuditBuffer))
	}
	auditPublisher := publisher.NewPublisher(memory.NewInMemoryStore(), auditOpts...)
	defer auditPublisher.Close()

	svc := identityservice.New(
		identityservice.WithLogger(log),
		identityservice.WithMetrics(identitymetrics.New(registry)),
		identityservice.WithAuditPublisher(auditPublisher),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	limiter := ratelimitmw.NewLimiter(bucket.New(), models.Policy{Limit: cfg.RateLimit, Window: time.Minute})
	rateLimit := ratelimitmw.New(limiter, log,
		ratelimitmw.WithDisabled(cfg.RateLimit == 0),
		ratelimitmw.WithMetrics(ratelimitmetrics.New(registry)),
	)
	r.Group(func(r chi.Router) {
		r.Use(rateLimit.RateLimit())
		identityhandler.New(svc, log, cfg.DefaultFormatLength).Register(r)
	})
	if cfg.AdminToken != "" {
		admin.New(auditPublisher, log, cfg.AdminToken).Register(r)
	} else {
		log.Info("admin routes disabled", "env", config.EnvAdminToken)
	}

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting personnummer service", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		return err
	}
	return nil
}
