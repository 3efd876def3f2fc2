// Command api is the F1nsight Data API server.
//
// Usage:
//
//	f1nsight-api
//	API_PORT=8080 f1nsight-api

// @title F1nsight Data API
// @version 1.0.0
// @description F1 statistics API serving standings, race results, driver search and comparison, career aggregates, and filtered news.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/f1nsight/f1nsight-api/internal/api"
	"github.com/f1nsight/f1nsight-api/internal/api/handler"
	"github.com/f1nsight/f1nsight-api/internal/cache"
	"github.com/f1nsight/f1nsight-api/internal/config"
	"github.com/f1nsight/f1nsight-api/internal/db"
	"github.com/f1nsight/f1nsight-api/internal/ergast"
	"github.com/f1nsight/f1nsight-api/internal/external"
	"github.com/f1nsight/f1nsight-api/internal/f1"
	"github.com/f1nsight/f1nsight-api/internal/store"

	_ "github.com/f1nsight/f1nsight-api/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Shared response cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Upstream statistics client + aggregation service
	client := ergast.NewClient(ergast.ClientConfig{
		BaseURL:           cfg.ErgastBaseURL,
		Timeout:           cfg.ErgastTimeout,
		RequestsPerMinute: cfg.ErgastRequestsPerMinute,
		Retry:             ergast.RetryPolicy{MaxAttempts: cfg.ErgastMaxRetries, BaseDelay: cfg.ErgastRetryDelay},
	}, appCache, logger)
	stats := f1.NewService(client, appCache, logger)

	// News service: unavailable without an API key, but the rest of the
	// process keeps running.
	var news *external.NewsService
	news, err = external.NewNewsService(cfg.NewsAPIKey, cfg.NewsBaseURL, appCache, logger)
	if err != nil {
		logger.Warn("News service unavailable", "error", err)
		news = nil
	}

	// User storage: optional.
	var users *store.Users
	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		users = store.NewUsers(pool.Pool)
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	} else {
		logger.Info("No DATABASE_URL set; user endpoints disabled")
	}

	h := handler.New(stats, news, users, appCache, cfg, logger)
	router := api.NewRouter(h, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting F1nsight Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
