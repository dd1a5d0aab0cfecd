package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebmoores/content-dashboard/internal/infra/db"
	"github.com/calebmoores/content-dashboard/internal/infra/suggester"
	"github.com/calebmoores/content-dashboard/internal/observability/logging"
	"github.com/calebmoores/content-dashboard/internal/pkg/config"
	"github.com/calebmoores/content-dashboard/internal/repository"

	markdownStore "github.com/calebmoores/content-dashboard/internal/infra/adapter/persistence/markdown"
	sqliteStore "github.com/calebmoores/content-dashboard/internal/infra/adapter/persistence/sqlite"

	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
	suggestUC "github.com/calebmoores/content-dashboard/internal/usecase/suggest"

	hhttp "github.com/calebmoores/content-dashboard/internal/handler/http"
	harticle "github.com/calebmoores/content-dashboard/internal/handler/http/article"
	hdashboard "github.com/calebmoores/content-dashboard/internal/handler/http/dashboard"
	"github.com/calebmoores/content-dashboard/internal/handler/http/middleware"
	"github.com/calebmoores/content-dashboard/internal/handler/http/requestid"
	hschedule "github.com/calebmoores/content-dashboard/internal/handler/http/schedule"
	hsuggest "github.com/calebmoores/content-dashboard/internal/handler/http/suggest"
)

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

	handler := setupServer(logger, cfg, repo, pinger)
	runServer(logger, cfg, handler)
}

// initStore opens the configured article store: sqlite when DASHBOARD_DB
// is set, the markdown directory store otherwise.
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
		logger.Info("using sqlite store", slog.String("path", cfg.DBPath))

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
	logger.Info("using markdown store", slog.String("dir", store.Dir()))
	return store, store, func() {}
}

// setupServer wires the use cases and registers all routes.
func setupServer(logger *slog.Logger, cfg *config.App, repo repository.ArticleRepository, pinger hhttp.Pinger) http.Handler {
	artSvc := &artUC.Service{Repo: repo}
	querySvc := &queryUC.Service{Repo: repo}
	schedSvc := &schedUC.Service{Repo: repo, Logger: logger}
	suggestSvc := suggestUC.NewService(suggester.NewFromEnv(logger), logger)

	mux := http.NewServeMux()

	harticle.Register(mux, artSvc, logger)
	hdashboard.Register(mux, querySvc, schedSvc)
	hschedule.Register(mux, schedSvc)

	suggestLimit := middleware.RateLimit(cfg.SuggestRate, cfg.SuggestBurst)
	mux.Handle("POST /ai/suggest", suggestLimit(hsuggest.Handler{Svc: suggestSvc}))

	mux.Handle("GET /healthz", hhttp.HealthHandler{Store: pinger, Version: cfg.Version})
	mux.Handle("GET /metrics", promhttp.Handler())

	return applyMiddleware(cfg, mux)
}

// applyMiddleware wraps the mux with the shared middleware chain.
// Order: CORS -> Request ID -> Metrics.
func applyMiddleware(cfg *config.App, handler http.Handler) http.Handler {
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORSOrigins

	chain := middleware.Metrics()(handler)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.App, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
