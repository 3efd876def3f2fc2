package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/f1nsight/f1nsight-api/internal/api/handler"
	"github.com/f1nsight/f1nsight-api/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Seasons & standings
		r.Get("/seasons", h.GetSeasons)
		r.Get("/standings/drivers", h.GetDriverStandings)
		r.Get("/standings/constructors", h.GetConstructorStandings)

		// Races
		r.Get("/races", h.GetRaces)
		r.Get("/races/{round}/results", h.GetRaceResults)

		// Drivers
		r.Get("/drivers/search", h.SearchDrivers)
		r.Get("/drivers/compare", h.CompareDrivers)
		r.Get("/drivers/{driverID}", h.GetDriverProfile)
		r.Get("/drivers/{driverID}/results", h.GetDriverResults)
		r.Get("/drivers/{driverID}/career", h.GetCareerStats)

		// News
		r.Get("/news", h.GetNews)
		r.Get("/news/sources", h.GetNewsSources)
		r.Get("/news/status", h.GetNewsStatus)

		// Users & favorites
		r.Post("/users", h.RegisterUser)
		r.Post("/users/login", h.LoginUser)
		r.Get("/users/{userID}/favorites", h.GetFavorites)
		r.Post("/users/{userID}/favorites/{driverID}", h.AddFavorite)
		r.Delete("/users/{userID}/favorites/{driverID}", h.RemoveFavorite)
	})

	return r
}
