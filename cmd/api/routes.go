package main

import (
	"context"
	"net/http"
	"time"

	"alexsimon-listings/internal/middleware"
	"alexsimon-listings/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

// setupOperationalRoutes configures health and metrics endpoints
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if cache.RedisClient != nil {
			if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
				return
			}
		}
		if _, err := a.store.Read(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "snapshot store unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.Config.Store.Backend})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.GET("/scraped-properties", a.ListingsHandler.GetSnapshot)
		api.GET("/mortgage/estimate", a.MortgageHandler.EstimatePayment)
		api.POST("/contact",
			middleware.RateLimitMiddleware(a.ContactLimiter),
			a.ContactHandler.SubmitContact)

		// Push ingestion: shared secret for the automation caller
		api.POST("/scraped-properties",
			middleware.BearerAuth(a.Config.Scraper.Secret, "SCRAPER_SECRET", true),
			a.ListingsHandler.PushProperties)

		// Pull ingestion: optional secret for scheduled callers
		api.GET("/fetch-properties",
			middleware.BearerAuth(a.Config.Scraper.CronSecret, "CRON_SECRET", false),
			a.ListingsHandler.FetchProperties)
	}
}
