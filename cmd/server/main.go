package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"ridepool/internal/config"
	handlers "ridepool/internal/handlers/shared"
	"ridepool/internal/middleware"
	"ridepool/internal/repositories/mongodb"
	"ridepool/internal/services"
	"ridepool/pkg/cache"
	"ridepool/pkg/database"
	"ridepool/pkg/logger"
	"ridepool/pkg/maps"
	"ridepool/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		AppName: cfg.App.Name,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// MongoDB holds the offer pool
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureOfferIndexes(ctx, db.Database); err != nil {
		appLogger.Fatalf("Failed to ensure offer indexes: %v", err)
	}
	cancel()

	// Redis fronts the pool reads and carries match events
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

	// Geocoding is optional; without it searches use the text fallback
	var geocoder maps.Geocoder
	if cfg.Maps.Enabled && cfg.Maps.APIKey != "" {
		geocoder, err = maps.NewGoogleMapsGeocoder(cfg.Maps.APIKey)
		if err != nil {
			appLogger.WithError(err).Warn("Geocoder unavailable, searches will use text fallback")
			geocoder = nil
		}
	}

	offerRepo := mongodb.NewOfferRepository(db.Database)
	searchService := services.NewSearchService(offerRepo, redisCache, geocoder, appLogger, cfg.Search.PoolCacheTTL)
	offerService := services.NewOfferService(offerRepo, redisCache, appLogger)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	offerHandler := handlers.NewOfferHandler(offerService)

	// Initialize Gin router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupSearchRoutes(v1, searchHandler, offerHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
