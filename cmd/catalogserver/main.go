package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/bootstrap"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/config"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/handler"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/handler/middleware"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository/postgres"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/service"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/blacklist"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/jwt"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/storage"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := bootstrap.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("✓ Database connection established")

	// Apply schema migrations
	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// Initialize Redis client
	redisClient, err := bootstrap.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}()
	log.Println("✓ Redis connection established")

	// Initialize validator
	validate := validator.NewValidator()

	// Initialize repositories
	productRepo := postgres.NewProductRepository(db)

	// Initialize JWT token service
	tokenService, err := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	// Initialize token blacklist service
	tokenBlacklist := blacklist.NewTokenBlacklist(redisClient)
	log.Println("✓ Token blacklist service initialized")

	// Initialize image storage
	var uploader service.ImageUploader
	if cfg.Storage.AccessKey != "" {
		s3Storage, err := storage.NewS3Storage(context.Background(), storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize image storage: %v", err)
		}
		uploader = s3Storage
		log.Printf("✓ Image storage initialized (bucket %s)", cfg.Storage.Bucket)
	} else {
		log.Println("ℹ Image storage disabled (set STORAGE_ACCESS_KEY to enable)")
	}

	// Initialize services
	productService := service.NewProductService(productRepo, uploader)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService, validate)
	healthHandler := handler.NewHealthHandler()

	// Create Fiber app
	app := bootstrap.NewFiberApp("Catalog Service v1.0", cfg)

	// Access gates per route table
	requireSeller := middleware.AuthMiddleware(tokenService, tokenBlacklist, "admin", "seller")
	requireAuth := middleware.AuthMiddleware(tokenService, tokenBlacklist, "admin", "seller", "user")

	// Setup routes
	handler.SetupCatalogRoutes(app, productHandler, healthHandler, requireSeller, requireAuth)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Catalog service starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("❌ Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}
