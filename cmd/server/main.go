package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/postalis/backend/internal/application/identity"
	postalapp "github.com/postalis/backend/internal/application/postal"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/infrastructure/cache"
	"github.com/postalis/backend/internal/infrastructure/config"
	"github.com/postalis/backend/internal/infrastructure/logger"
	"github.com/postalis/backend/internal/infrastructure/persistence"
	"github.com/postalis/backend/internal/interfaces/http/handler"
	"github.com/postalis/backend/internal/interfaces/http/middleware"
	"github.com/postalis/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Postalis Backend API
//	@version		1.0
//	@description	Tenant-scoped postal options catalog and postage resolution service.

//	@contact.name	API Support
//	@contact.url	https://github.com/postalis/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Postalis Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	colorRepo := persistence.NewGormOptionRepository[postal.PrintColorOption](db.DB)
	sideRepo := persistence.NewGormOptionRepository[postal.PrintSideOption](db.DB)
	speedRepo := persistence.NewGormOptionRepository[postal.PostageSpeedOption](db.DB)
	envelopeRepo := persistence.NewGormOptionRepository[postal.EnvelopeFormat](db.DB)
	rateRepo := persistence.NewGormPostageRateRepository(db.DB)

	// Initialize tenant configuration cache
	cacheFactory := cache.NewConfigCacheFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log))
	configCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create tenant config cache", zap.Error(err))
	}
	defer func() {
		if err := configCache.Close(); err != nil {
			log.Error("Error closing tenant config cache", zap.Error(err))
		}
	}()
	log.Info("Tenant config cache ready", zap.String("backend", cfg.Cache.Backend))

	// Initialize application services
	tenantService := identityapp.NewTenantService(tenantRepo, configCache, log)
	configService := postalapp.NewTenantConfigService(
		tenantRepo, assignmentRepo, colorRepo, sideRepo, envelopeRepo, speedRepo, configCache, log)
	colorService := postalapp.NewPrintColorService(colorRepo, assignmentRepo, tenantRepo, configCache, log)
	sideService := postalapp.NewPrintSideService(sideRepo, assignmentRepo, tenantRepo, configCache, log)
	speedService := postalapp.NewPostageSpeedService(speedRepo, assignmentRepo, tenantRepo, configCache, log)
	envelopeService := postalapp.NewEnvelopeService(envelopeRepo, assignmentRepo, tenantRepo, configCache, log)
	rateService := postalapp.NewRateService(rateRepo, assignmentRepo, tenantRepo, configCache, log)
	rateImportService := postalapp.NewRateImportService(
		rateRepo, speedRepo, assignmentRepo, tenantRepo, configCache, log)
	postageService := postalapp.NewPostageService(configService, rateRepo)

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report validation errors with json field names
	middleware.SetupValidator()

	// Create gin engine with zap-backed logging and recovery
	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS())
	engine.Use(middleware.Secure())

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Assemble the API route tree
	r := router.NewRouter(engine)
	r.Register(
		handler.NewTenantHandler(tenantService, configService),
		handler.NewOptionHandler("colors", colorService),
		handler.NewOptionHandler("sides", sideService),
		handler.NewOptionHandler("speeds", speedService),
		handler.NewEnvelopeHandler(envelopeService),
		handler.NewRateHandler(rateService, rateImportService),
		handler.NewConfigHandler(configService),
		handler.NewPostageHandler(postageService),
		handler.NewSystemHandler(db.DB),
	)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
