package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Priya8975/pawpal-landing/internal/api"
	"github.com/Priya8975/pawpal-landing/internal/clock"
	"github.com/Priya8975/pawpal-landing/internal/config"
	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/Priya8975/pawpal-landing/internal/engine"
	"github.com/Priya8975/pawpal-landing/internal/notifier"
	"github.com/Priya8975/pawpal-landing/internal/store"
	ws "github.com/Priya8975/pawpal-landing/internal/websocket"
	"github.com/Priya8975/pawpal-landing/migrations"
)

//go:embed static
var staticFiles embed.FS

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	catalog, closeCatalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load content", "error", err)
		os.Exit(1)
	}
	defer closeCatalog()

	// WebSocket hub for busy-state pushes
	hub := ws.NewHub(logger)
	go hub.Run()

	var (
		busy     notifier.BusyStore = notifier.NewMemoryBusyStore()
		outcomes interface {
			notifier.Recorder
			api.OutcomeReader
		} = store.NewMemoryOutcomes()
		opts = []notifier.Option{notifier.WithObserver(hub)}
	)

	// Redis is optional: it shares busy state and counters across instances.
	if cfg.RedisURL != "" {
		redisStore, err := store.NewRedis(ctx, cfg.RedisURL, cfg.BusyTTL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		logger.Info("connected to Redis")

		busy = redisStore
		outcomes = redisStore

		if cfg.IntentRateLimit > 0 {
			limiter := engine.NewRateLimiter(redisStore.Client(), logger)
			opts = append(opts, notifier.WithLimiter(limiter, cfg.IntentRateLimit))
		}
	}
	opts = append(opts, notifier.WithRecorder(outcomes))

	sender := notifier.NewHTTPSender(cfg.WebhookURL, cfg.WebhookSecret, cfg.WebhookTimeout, logger)
	intentNotifier := notifier.New(sender, busy, clock.NewSystem(), logger, opts...)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.Error("failed to open static files", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.Deps{
		Catalog:       catalog,
		Notifier:      intentNotifier,
		Busy:          busy,
		Outcomes:      outcomes,
		Hub:           hub,
		RegisterRoute: cfg.RegisterRoute,
		StaticFS:      staticFS,
		Logger:        logger,
	})

	server := newHTTPServer(cfg, router)

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port, "webhook_url", cfg.WebhookURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newHTTPServer builds the server with a write deadline that outlasts the
// webhook call, so the redirect written after it is never cut off.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ServerWriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}
}

// loadCatalog reads page content from PostgreSQL when configured, seeding it
// from the built-in catalog on first start. Without a database the built-in
// catalog is served.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*content.Catalog, func(), error) {
	if cfg.DatabaseURL == "" {
		return content.Default(), func() {}, nil
	}

	pgStore, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to PostgreSQL")

	if err := pgStore.RunMigrations(ctx, migrations.Files); err != nil {
		pgStore.Close()
		return nil, nil, err
	}
	logger.Info("database migrations applied")

	seeded, err := pgStore.SeedCatalog(ctx, content.Default())
	if err != nil {
		pgStore.Close()
		return nil, nil, err
	}
	if seeded {
		logger.Info("content catalog seeded")
	}

	catalog, err := pgStore.LoadCatalog(ctx)
	if err != nil {
		pgStore.Close()
		return nil, nil, err
	}
	if err := catalog.Validate(); err != nil {
		pgStore.Close()
		return nil, nil, err
	}

	return catalog, pgStore.Close, nil
}
