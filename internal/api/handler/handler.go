// Package handler provides HTTP handlers for all API endpoints.
// Handlers are thin: parameter parsing and response shaping only. All
// aggregation logic lives in the f1 and external packages, which never
// fail on expected-absent data, so most handlers can always answer 200
// with an empty collection.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
	"github.com/f1nsight/f1nsight-api/internal/cache"
	"github.com/f1nsight/f1nsight-api/internal/config"
	"github.com/f1nsight/f1nsight-api/internal/external"
	"github.com/f1nsight/f1nsight-api/internal/f1"
	"github.com/f1nsight/f1nsight-api/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	stats  *f1.Service
	news   *external.NewsService // nil when NEWS_API_KEY is absent
	users  *store.Users          // nil when no database is configured
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies. news and users may be
// nil; the corresponding endpoints answer 503.
func New(stats *f1.Service, news *external.NewsService, users *store.Users, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		stats:  stats,
		news:   news,
		users:  users,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "F1nsight Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
