package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/store-rating-platform/internal/config"     // Internal config loader
	"github.com/iliyamo/store-rating-platform/internal/database"   // MySQL connection pool
	"github.com/iliyamo/store-rating-platform/internal/handler"    // HTTP handlers
	"github.com/iliyamo/store-rating-platform/internal/middleware" // Cache and rate limit middleware
	"github.com/iliyamo/store-rating-platform/internal/queue"      // Rating event consumer
	"github.com/iliyamo/store-rating-platform/internal/repository" // Data access layer
	"github.com/iliyamo/store-rating-platform/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Open MySQL pool
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // May be nil; cache and limiter degrade to pass-through

	users := repository.NewUserRepo(db)     // User accounts
	stores := repository.NewStoreRepo(db)   // Store records
	ratings := repository.NewRatingRepo(db) // Rating upserts and aggregates
	stats := repository.NewStatsRepo(db)    // Platform counters

	authH := handler.NewAuthHandler(cfg, users)
	ratingH := handler.NewRatingHandler(ratings)
	ownerH := handler.NewOwnerHandler(ratings)
	adminH := handler.NewAdminHandler(users, stores, stats)
	userH := handler.NewUserHandler(cfg, users)
	storeH := handler.NewStoreHandler(stores)

	e := echo.New() // Create Echo instance

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)) // Redis token bucket across the whole API

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb) // Response cache for guest browsing

	router.RegisterRoutes(e) // Health check
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, storeH, cacheMW) // Guest store list + search, cached
	router.RegisterUser(e, ratingH, userH, cfg.JWTSecret)
	router.RegisterOwner(e, ownerH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, userH, storeH, cfg.JWTSecret)

	go func() { // Consume rating events into the audit log
		if err := queue.StartRatingConsumer(); err != nil {
			log.Printf("rating consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
