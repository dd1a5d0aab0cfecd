package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/calebmoores/content-dashboard/internal/infra/db"
	"github.com/calebmoores/content-dashboard/internal/observability/logging"
	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
	"github.com/calebmoores/content-dashboard/internal/pkg/config"
	"github.com/calebmoores/content-dashboard/internal/repository"
	pkgconfig "github.com/calebmoores/content-dashboard/pkg/config"

	hhttp "github.com/calebmoores/content-dashboard/internal/handler/http"
	markdownStore "github.com/calebmoores/content-dashboard/internal/infra/adapter/persistence/markdown"
	sqliteStore "github.com/calebmoores/content-dashboard/internal/infra/adapter/persistence/sqlite"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
)

// The worker runs the publish-due sweep on a cron schedule: every
// Scheduled article whose target date has arrived is moved to Published.
// It shares the store with the api binary, so both can run side by side.
func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repo, pinger, cleanup := initStore(logger, cfg)
	defer cleanup()

	svc := &schedUC.Service{Repo: repo, Logger: logger}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runCron(ctx, logger, cfg, svc) })
	g.Go(func() error { return runHealthServer(ctx, logger, pinger, cfg.Version) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

func initStore(logger *slog.Logger, cfg *config.App) (repository.ArticleRepository, hhttp.Pinger, func()) {
	if cfg.DBPath != "" {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}

		repo := sqliteStore.NewArticleRepo(database)
		return repo, repo, func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}
	}

	store, err := markdownStore.NewStore(cfg.DraftsDir, logger)
	if err != nil {
		logger.Error("failed to open drafts directory", slog.Any("error", err))
		os.Exit(1)
	}
	return store, store, func() {}
}

// runCron schedules the publish-due sweep and blocks until the context
// is cancelled.
func runCron(ctx context.Context, logger *slog.Logger, cfg *config.App, svc *schedUC.Service) error {
	c := cron.New()
	_, err := c.AddFunc(cfg.AutoPublishSchedule, func() {
		runSweep(logger, svc)
	})
	if err != nil {
		return err
	}

	c.Start()
	logger.Info("worker started", slog.String("schedule", cfg.AutoPublishSchedule))

	<-ctx.Done()
	logger.Info("stopping cron scheduler...")

	// Let an in-flight sweep finish before exiting.
	<-c.Stop().Done()
	return ctx.Err()
}

// runSweep executes a single publish-due pass with timeout and metrics.
func runSweep(logger *slog.Logger, svc *schedUC.Service) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	published, err := svc.PublishDue(ctx, time.Now())
	metrics.AutoPublishRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("auto-publish sweep failed", slog.Any("error", err))
		return
	}

	metrics.AutoPublishTotal.Add(float64(published))
	if published > 0 {
		logger.Info("auto-publish sweep done",
			slog.Int("published", published),
			slog.Duration("took", time.Since(start)))
	}
}

// runHealthServer exposes /healthz and /metrics for the worker process.
func runHealthServer(ctx context.Context, logger *slog.Logger, pinger hhttp.Pinger, version string) error {
	addr := pkgconfig.GetEnvString("WORKER_HEALTH_ADDR", ":8081")

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", hhttp.HealthHandler{Store: pinger, Version: version})
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("worker health server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown failed", slog.Any("error", err))
	}
	return ctx.Err()
}
