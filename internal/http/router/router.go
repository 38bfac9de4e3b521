package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/northbridge-capital/broker-api/internal/auth"
	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/northbridge-capital/broker-api/internal/database"
	"github.com/northbridge-capital/broker-api/internal/http/handler"
	"github.com/northbridge-capital/broker-api/internal/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/northbridge-capital/broker-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	leadHandler      *handler.LeadHandler
	quoteHandler     *handler.QuoteHandler
	contactHandler   *handler.ContactHandler
	analyticsHandler *handler.AnalyticsHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	leadHandler *handler.LeadHandler,
	quoteHandler *handler.QuoteHandler,
	contactHandler *handler.ContactHandler,
	analyticsHandler *handler.AnalyticsHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		leadHandler:      leadHandler,
		quoteHandler:     quoteHandler,
		contactHandler:   contactHandler,
		analyticsHandler: analyticsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		status := "healthy"
		if !allHealthy {
			status = "unhealthy"
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (website intake surface, no auth required)
		r.Post("/leads", rt.leadHandler.Create)
		r.Get("/leads/check-email", rt.leadHandler.CheckEmail)
		r.Post("/quotes", rt.quoteHandler.Save)
		r.Post("/quotes/calculate", rt.quoteHandler.Calculate)
		r.Get("/quotes/session/{sessionId}", rt.quoteHandler.ListBySession)
		r.Post("/contact", rt.contactHandler.Create)
		r.Post("/events", rt.analyticsHandler.Track)

		// Admin routes (dashboard surface)
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Leads
			r.Get("/leads", rt.leadHandler.List)
			r.Get("/leads/hot", rt.leadHandler.ListHot)
			r.Get("/leads/recent", rt.leadHandler.ListRecent)
			r.Get("/leads/stats", rt.leadHandler.GetStats)
			r.Get("/leads/trade/{tradeType}", rt.leadHandler.ListByTrade)
			r.Get("/leads/{id}", rt.leadHandler.GetByID)
			r.Put("/leads/{id}/status", rt.leadHandler.UpdateStatus)

			// Quotes
			r.Get("/quotes/lead/{leadId}", rt.quoteHandler.ListByLead)
			r.Get("/quotes/stats", rt.quoteHandler.GetStats)

			// Contact submissions
			r.Get("/contact", rt.contactHandler.List)
			r.Put("/contact/{id}/status", rt.contactHandler.UpdateStatus)

			// Analytics
			r.Get("/events/session/{sessionId}", rt.analyticsHandler.ListBySession)
			r.Get("/events/pageviews", rt.analyticsHandler.GetPageViewStats)
		})
	})

	return r
}
