package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/northbridge-capital/broker-api/docs"
	"github.com/northbridge-capital/broker-api/internal/auth"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/northbridge-capital/broker-api/internal/database"
	"github.com/northbridge-capital/broker-api/internal/http/handler"
	"github.com/northbridge-capital/broker-api/internal/http/middleware"
	"github.com/northbridge-capital/broker-api/internal/http/router"
	"github.com/northbridge-capital/broker-api/internal/jobs"
	"github.com/northbridge-capital/broker-api/internal/logger"
	"github.com/northbridge-capital/broker-api/internal/mail"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"github.com/northbridge-capital/broker-api/internal/service"
	"go.uber.org/zap"
)

// @title Northbridge Broker API
// @version 1.0
// @description Lead generation and loan calculator backend for the Northbridge trade finance site

// @contact.name API Support
// @contact.email dev@northbridge-capital.co.uk

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch cfg.App.Environment {
	case "production":
		docs.SwaggerInfo.Host = "api.northbridge-capital.co.uk"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	clk := clock.New()

	db, err := database.NewDatabase(&cfg.Database, clk)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	contactRepo := repository.NewContactRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Mail notifier (no-op when mail is disabled)
	notifier := mail.NewNotifier(&cfg.Mail, log)

	// Initialize services
	leadService := service.NewLeadService(leadRepo, notifier, clk, log)
	quoteService := service.NewQuoteService(quoteRepo, clk, log)
	contactService := service.NewContactService(contactRepo, notifier, clk, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, clk, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	leadHandler := handler.NewLeadHandler(leadService, log)
	quoteHandler := handler.NewQuoteHandler(quoteService, log)
	contactHandler := handler.NewContactHandler(contactService, log)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		leadHandler,
		quoteHandler,
		contactHandler,
		analyticsHandler,
	)

	// Start scheduler with the analytics retention job
	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterRetentionJob(
		scheduler,
		analyticsService,
		cfg.Analytics.RetentionDays,
		cfg.Analytics.RetentionCron,
		log,
	); err != nil {
		return fmt.Errorf("failed to register retention job: %w", err)
	}
	scheduler.Start()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
