package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sindico-pro/sindicopro-sub/internal/api/middleware"
	"github.com/sindico-pro/sindicopro-sub/internal/config"
	"github.com/sindico-pro/sindicopro-sub/internal/generator"
	"github.com/sindico-pro/sindicopro-sub/internal/handlers"
	"github.com/sindico-pro/sindicopro-sub/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(cfg *config.Config, logger zerolog.Logger, redisStore *store.RedisStore, gen generator.Generator) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	// Security middleware
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodySize(32 * 1024)) // 32KB max body

	// Standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// Rate limiting shares the session store's Redis pool
	limiter := middleware.NewRateLimiter(redisStore.Client(), logger, cfg.RedisKeyPrefix, cfg.RateLimitPerMinute)
	r.Use(limiter.Middleware)

	// CORS for the web frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h := handlers.NewHandler(redisStore, gen, logger, cfg.ContextMessageLimit)

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.Root)
	r.Get("/api", h.APIInfo)

	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/message", h.SendMessage)
		r.Get("/history", h.GetHistory)
		r.Delete("/history", h.ClearHistory)
		r.Get("/sessions", h.ListSessions)
		r.Get("/stats", h.Stats)
		r.Get("/health", h.Health)
	})

	return r
}
