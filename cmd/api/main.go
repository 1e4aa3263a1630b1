package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"docvault/docs"
	"docvault/internal/config"
	"docvault/internal/database"
	"docvault/internal/database/migration"
	handlers "docvault/internal/http/handler"
	"docvault/internal/http/middleware"
	"docvault/internal/logger"
	"docvault/internal/otel"
	"docvault/internal/repository"
	"docvault/internal/repository/local"
	"docvault/internal/repository/postgres"
	"docvault/internal/repository/remote"
	"docvault/internal/service"
	"docvault/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title docvault API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load categories")
	}

	store, db, err := newDocumentStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DocStore.Backend).Msg("failed to initialize document store")
	}
	if db != nil {
		defer db.Close()
	}

	docSvc := service.NewDocumentService(store, categories, cfg.DocStore.SuggestionLimit, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	// RequestID must run before Logger so the access log carries request_id
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, docSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("backend", cfg.DocStore.Backend).Msg("server_starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("server_stopping")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server_shutdown_failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing_shutdown_failed")
	}
}

// newDocumentStore builds the configured document store. The returned *sql.DB is nil for
// the remote backend.
func newDocumentStore(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (repository.DocumentStore, *sql.DB, error) {
	switch cfg.DocStore.Backend {
	case config.BackendRemote:
		client, err := remote.New(cfg.DocStore.BaseURL, cfg.DocStore.Token, time.Duration(cfg.DocStore.TimeoutSec)*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil

	case config.BackendLocal:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}

		objects, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("initialize object storage: %w", err)
		}

		expiry := time.Duration(cfg.DocStore.PresignExpirySec) * time.Second
		return local.New(postgres.NewDocumentPostgres(db), objects, expiry), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown document store backend %q", cfg.DocStore.Backend)
	}
}
