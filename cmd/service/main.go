// Package main runs the quotes API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen/quotebook/internal/adapters/cache"
	"github.com/jsamuelsen/quotebook/internal/adapters/events"
	"github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/adapters/persistence"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Set with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "quotebook: %v\n", err)
		os.Exit(1)
	}
}

// cleanup collects close functions and runs them in reverse order.
type cleanup struct {
	logger *slog.Logger
	steps  []func()
}

func (c *cleanup) add(name string, closeFn func() error) {
	c.steps = append(c.steps, func() {
		if err := closeFn(); err != nil {
			c.logger.Warn("close failed", slog.String("resource", name), slog.Any("error", err))
		}
	})
}

func (c *cleanup) run() {
	for i := len(c.steps) - 1; i >= 0; i-- {
		c.steps[i]()
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting quotes API",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("profile", profile),
		slog.String("db_driver", cfg.Database.Driver),
	)

	closers := &cleanup{logger: logger}
	defer closers.run()

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	closers.add("telemetry", func() error { return tel.Shutdown(context.WithoutCancel(ctx)) })

	registry := ports.NewHealthRegistry()

	service, err := newQuoteService(ctx, cfg, logger, registry, closers)
	if err != nil {
		return err
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: cfg.App.Name,
		APIRoot:     cfg.Server.APIRoot,
		CORS: middleware.CORSConfig{
			AllowAll:       cfg.CORS.AllowAll,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		QuoteHandler:  handlers.NewQuoteHandler(service),
		Timeout:       http.DefaultRequestTimeout,
	})

	if err := server.Serve(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	file := cfg.Log.File

	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    file.Enabled,
			Path:       file.Path,
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	})
}

// newQuoteService opens the store and the optional cache and event
// publisher, registering each with the health registry.
func newQuoteService(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	registry *ports.DefaultHealthRegistry,
	closers *cleanup,
) (*app.QuoteService, error) {
	db := cfg.Database

	store, err := persistence.Open(persistence.Config{
		Driver:          db.Driver,
		DSN:             db.DSN,
		Replicas:        db.Replicas,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		LogLevel:        db.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	closers.add("store", store.Close)

	deps := app.QuoteServiceConfig{
		Quotes:             persistence.NewQuoteRepository(store.DB()),
		Tags:               persistence.NewTagRepository(store.DB()),
		TagCacheTTLSeconds: cfg.Cache.TagTTL,
		Logger:             logger,
	}
	checks := []ports.HealthChecker{store}

	if cfg.Cache.Enabled {
		redisCache, err := cache.New(ctx, cache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting cache: %w", err)
		}
		closers.add("cache", redisCache.Close)

		deps.Cache = redisCache
		checks = append(checks, redisCache)
	}

	if cfg.Events.Enabled {
		publisher, err := events.Dial(events.Config{
			URL:      cfg.Events.URL,
			Exchange: cfg.Events.Exchange,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting event broker: %w", err)
		}
		closers.add("events", publisher.Close)

		deps.Events = publisher
		checks = append(checks, publisher)
	}

	for _, check := range checks {
		if err := registry.Register(check); err != nil {
			return nil, fmt.Errorf("registering %s health check: %w", check.Name(), err)
		}
	}

	return app.NewQuoteService(deps), nil
}
