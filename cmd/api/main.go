// Package main is the entrypoint for the exercise tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/extracker/extracker/internal/cache"
	"github.com/extracker/extracker/internal/config"
	"github.com/extracker/extracker/internal/handler"
	"github.com/extracker/extracker/internal/metrics"
	"github.com/extracker/extracker/internal/middleware"
	"github.com/extracker/extracker/internal/repository"
	"github.com/extracker/extracker/internal/server"
	"github.com/extracker/extracker/internal/service"
)

// trackerStore is what the service and readiness probe need from a store.
type trackerStore interface {
	service.UserStore
	service.ExerciseStore
	handler.HealthChecker
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}

	// Redis is optional and only backs rate limiting.
	var (
		cacheClient  *cache.Cache
		cacheChecker handler.HealthChecker
		limiter      middleware.RateLimiter
	)
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		cacheChecker = cacheClient
		limiter = cacheClient
		logger.Info("connected to Redis")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheus(registry)

	tracker := service.NewTrackerService(store, store, recorder)

	r := handler.NewRouter(handler.RouterConfig{
		Logger:   logger,
		Tracker:  tracker,
		Store:    store,
		Cache:    cacheChecker,
		Gatherer: registry,
		Security: middleware.SecurityConfig{
			IsDevelopment:      cfg.IsDevelopment(),
			MaxRequestBodySize: cfg.MaxRequestBodySize,
		},
		AllowedOrigins: cfg.GetCORSAllowedOrigins(),
		RateLimit: middleware.RateLimitConfig{
			Logger:  logger,
			Limiter: limiter,
			Metrics: recorder,
			Enabled: cfg.RateLimitActive(),
			RPS:     cfg.RateLimitRPS,
			Burst:   cfg.RateLimitBurst,
		},
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("store", func(ctx context.Context) error {
		closeStore()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"store", cfg.StoreDriver,
		"rate_limit", cfg.RateLimitActive(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore builds the configured store and returns a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (trackerStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemory(), func() {}, nil

	case config.StoreDriverPostgres:
		repo, err := repository.New(ctx, cfg.DatabaseURL, repository.PoolConfig{
			MaxConns: cfg.DatabaseMaxConns,
			MinConns: cfg.DatabaseMinConns,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to database")

		if cfg.AutoMigrate {
			if err := repo.Migrate(ctx); err != nil {
				repo.Close()
				return nil, nil, err
			}
			logger.Info("database migrations applied")
		}
		return repo, repo.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("service", "extracker")
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s&]+`)

// redactURL strips the password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes connection secrets from an error message.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
