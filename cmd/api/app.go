package main

import (
	"net/http"
	"os"
	"time"

	"alexsimon-listings/internal/handlers"
	"alexsimon-listings/internal/middleware"
	"alexsimon-listings/internal/repositories"
	"alexsimon-listings/internal/scheduler"
	"alexsimon-listings/internal/services"
	"alexsimon-listings/internal/transformers"
	"alexsimon-listings/internal/validators"
	"alexsimon-listings/pkg/cache"
	"alexsimon-listings/pkg/config"
	"alexsimon-listings/pkg/database"
	"alexsimon-listings/pkg/logger"
	"alexsimon-listings/pkg/mailer"
	"alexsimon-listings/pkg/metrics"
	"alexsimon-listings/pkg/scraper"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	ListingsHandler *handlers.ListingsHandler
	ContactHandler  *handlers.ContactHandler
	MortgageHandler *handlers.MortgageHandler
	ContactLimiter  *middleware.RateLimiter
	Scheduler       *scheduler.Scheduler
	Server          *http.Server

	store repositories.SnapshotStore
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Infrastructure
	app.initializeMetrics()
	app.initializeStore()
	app.initializeCache()
	app.initializeRateLimiter()

	// Business logic
	app.initializeDependencies()

	// Web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// pick the snapshot store backend
func (a *App) initializeStore() {
	switch a.Config.Store.Backend {
	case "mongo":
		if err := database.InitDB(a.Config); err != nil {
			logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
			os.Exit(1)
		}
		a.store = repositories.NewSnapshotMongoStore(database.DB)
	case "memory":
		logger.GlobalLogger.Warnf("Using in-memory snapshot store; listings will not survive a restart")
		a.store = repositories.NewSnapshotMemoryStore()
	default:
		a.store = repositories.NewSnapshotFileStore(a.Config.Store.File)
	}
	logger.GlobalLogger.Printf("Snapshot store backend: %s", a.Config.Store.Backend)
}

// initialize the optional Redis read cache
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		return
	}
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis, continuing without cache: %v", err)
		cache.RedisClient = nil
	}
}

// initialize the contact-form rate limiter
func (a *App) initializeRateLimiter() {
	a.ContactLimiter = middleware.NewRateLimiter(rate.Limit(10/60.0), 5)
	go a.ContactLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	var snapshotCache repositories.SnapshotCache
	if cache.RedisClient != nil {
		snapshotCache = repositories.NewSnapshotCache(cache.RedisClient)
	}

	// transformers
	propTrans := transformers.NewPropertyTransformer()
	addrTrans := transformers.NewAddressTransformer()

	// validators
	ingestValidator := validators.NewIngestValidator()
	contactValidator := validators.NewContactValidator()

	// outbound clients
	fetcher := scraper.NewClient(
		a.Config.Scraper.URL,
		time.Duration(a.Config.Scraper.TimeoutSeconds)*time.Second,
	)
	var mail mailer.Mailer
	if a.Config.MailConfigured() {
		mail = mailer.NewSMTPMailer(
			a.Config.Mail.Host,
			a.Config.Mail.Port,
			a.Config.Mail.Username,
			a.Config.Mail.Password,
			a.Config.Mail.From,
		)
	} else {
		logger.GlobalLogger.Warnf("No SMTP credentials configured; contact submissions will be logged instead of sent")
		mail = &mailer.ConsoleMailer{}
	}

	// services
	dedup := services.NewDeduplicator(addrTrans)
	ingestService := services.NewIngestService(
		a.store, snapshotCache, propTrans, dedup, ingestValidator, fetcher,
		a.Config.Scraper.RealtorName,
		a.Config.Scraper.DefaultAgency,
		a.Config.Scraper.RealtorName,
	)
	snapshotService := services.NewSnapshotService(a.store, snapshotCache)
	contactService := services.NewContactService(mail, contactValidator, a.Config.Mail.Recipient, a.Config.MailConfigured())
	mortgageService := services.NewMortgageService()

	// handlers
	a.ListingsHandler = handlers.NewListingsHandler(snapshotService, ingestService)
	a.ContactHandler = handlers.NewContactHandler(contactService)
	a.MortgageHandler = handlers.NewMortgageHandler(mortgageService)

	// scheduled pull ingestion
	a.Scheduler = scheduler.New(
		ingestService,
		a.Config.Scraper.Schedule,
		time.Duration(a.Config.Scraper.TimeoutSeconds)*time.Second,
	)
	if err := a.Scheduler.Start(); err != nil {
		logger.GlobalLogger.Errorf("Failed to start scheduler: %v", err)
		os.Exit(1)
	}
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Config.Store.Backend == "mongo" {
		database.CloseDB()
	}
	if cache.RedisClient != nil {
		cache.CloseRedis()
	}
}
