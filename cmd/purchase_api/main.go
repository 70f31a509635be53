package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/adapters/treasury"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_exchange_app/internal/core/services"
	"github.com/SscSPs/purchase_exchange_app/internal/handlers"
	"github.com/SscSPs/purchase_exchange_app/internal/middleware"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/config"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
	"github.com/SscSPs/purchase_exchange_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/purchase_exchange_app/internal/repositories/memory"
	"github.com/SscSPs/purchase_exchange_app/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Purchase Exchange API
// @version 1.0
// @description Stores USD purchases and converts them using Treasury Reporting Rates of Exchange.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("Application stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var rates portsrepo.RateProvider = treasury.NewClient(cfg.TreasuryAPIURL, treasury.WithTimeout(cfg.TreasuryTimeout))
	rates = treasury.NewInstrumentingProvider(m, rates)
	rates = treasury.NewLoggingProvider(rates)

	var repos portsrepo.RepositoryProvider
	if cfg.UsesDatabase() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)

		repos = pgsql.NewRepositoryProvider(dbPool, rates)
	} else {
		logger.Warn("Using in-memory purchase store")
		repos = memory.NewRepositoryProvider(rates)
	}

	serviceContainer := services.NewServiceContainer(repos, m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiter: %w", err)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiterInstance),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, m); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("auth_enabled", cfg.JWTSecret != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
