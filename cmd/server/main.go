package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vango/internal/config"
	"vango/internal/handlers"
	"vango/internal/middleware"
	"vango/internal/repositories/mongodb"
	"vango/internal/services"
	"vango/pkg/cache"
	"vango/pkg/database"
	"vango/pkg/logger"
	"vango/pkg/maps"
	"vango/pkg/payment"
	"vango/pkg/storage"
	"vango/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	auditLogger, err := logger.NewAuditLogger(&logger.Config{
		Level:   logger.InfoLevel,
		Output:  "stdout",
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize audit logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Without an API key customers must supply the distance themselves.
	var distanceProvider maps.DistanceProvider
	if cfg.Maps.APIKey != "" {
		provider, err := maps.NewGoogleMapsProvider(cfg.Maps.APIKey, cfg.Maps.Region)
		if err != nil {
			appLogger.Fatalf("Failed to initialize maps client: %v", err)
		}
		distanceProvider = provider
	}

	providers := make(map[string]payment.PaymentProvider)
	if cfg.Payment.Stripe.SecretKey != "" {
		providers["stripe"] = payment.NewStripeProvider(cfg.Payment.Stripe.SecretKey, cfg.Payment.Stripe.WebhookSecret)
	}
	if cfg.Payment.PayPal.ClientID != "" {
		providers["paypal"] = payment.NewPayPalProvider(cfg.Payment.PayPal.ClientID, cfg.Payment.PayPal.ClientSecret, cfg.Payment.PayPal.Mode)
	}
	if len(providers) == 0 {
		appLogger.Warn("No payment providers configured, bookings will fail")
	}

	var storageProvider storage.StorageProvider
	if cfg.Storage.Provider == "s3" {
		storageProvider, err = storage.NewAWSS3Storage(cfg.Storage.S3Region, cfg.Storage.S3Bucket, cfg.Storage.CDNDomain)
	} else {
		storageProvider, err = storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.App.BaseURL+"/uploads")
	}
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	bookingRepo := mongodb.NewBookingRepository(db.Database)
	driverRepo := mongodb.NewDriverRepository(db.Database)

	cacheService := services.NewCacheService(redisCache)
	quoteService := services.NewQuoteService(cfg.Pricing.Card, distanceProvider, cacheService, appLogger, cfg.Redis.QuoteTTL)
	bookingService := services.NewBookingService(bookingRepo, quoteService, providers, cfg.Payment.DefaultProvider, cfg.Payment.Currency, appLogger)
	driverService := services.NewDriverService(driverRepo, storageProvider, appLogger)
	authService := services.NewAuthService(cfg.Security, appLogger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RateLimitMiddleware(redisCache, 120, time.Minute))

	routes.Setup(router, &routes.Handlers{
		Quote:   handlers.NewQuoteHandler(quoteService),
		Booking: handlers.NewBookingHandler(bookingService),
		Driver:  handlers.NewDriverHandler(driverService),
		Admin:   handlers.NewAdminHandler(bookingService, driverService, quoteService, auditLogger),
		Auth:    handlers.NewAuthHandler(authService, auditLogger),
		Health:  handlers.NewHealthHandler(db, cfg.App.Version),
	}, cfg.Security.JWTSecret)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
