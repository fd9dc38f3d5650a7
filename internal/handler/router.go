package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/extracker/extracker/internal/middleware"
	"github.com/extracker/extracker/internal/service"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger  *slog.Logger
	Tracker *service.TrackerService

	// Store and Cache back the readiness probe. Cache may be nil.
	Store HealthChecker
	Cache HealthChecker

	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	Security       middleware.SecurityConfig
	AllowedOrigins []string
	RateLimit      middleware.RateLimitConfig
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	h := New()
	healthHandler := NewHealthHandler(cfg.Store, cfg.Cache)
	metricsHandler := NewMetricsHandler(cfg.Gatherer)
	userHandler := NewUserHandler(cfg.Tracker, cfg.Logger)
	exerciseHandler := NewExerciseHandler(cfg.Tracker, cfg.Logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.AllowedOrigins

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger, cfg.Security.IsDevelopment))
	r.Use(middleware.Security(cfg.Security))
	if cfg.Security.MaxRequestBodySize > 0 {
		r.Use(middleware.MaxBodySize(cfg.Security.MaxRequestBodySize))
	}
	r.Use(middleware.CORS(corsCfg))

	// Set before mounting so the /api subrouters inherit them.
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)
	r.Get("/", h.Hello)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(cfg.RateLimit))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Post("/{id}/exercises", exerciseHandler.Add)
			r.Get("/{id}/logs", exerciseHandler.Logs)
		})
	})

	return r
}
