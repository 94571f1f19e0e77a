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
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/email"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/jwt"
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
	userRepo := postgres.NewUserRepository(db)

	// Initialize JWT token service
	tokenService, err := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	// Initialize token blacklist service
	tokenBlacklist := blacklist.NewTokenBlacklist(redisClient)
	log.Println("✓ Token blacklist service initialized")

	// Initialize email service
	var emailService email.EmailService
	if cfg.Email.Enabled {
		emailService, err = email.NewResendEmailService(&email.EmailConfig{
			APIKey:    cfg.Email.APIKey,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize email service: %v", err)
			log.Println("Email functionality will be disabled")
			emailService = nil
		} else {
			log.Println("✓ Email service initialized (Resend)")
		}
	} else {
		log.Println("ℹ Email service disabled (set EMAIL_ENABLED=true to enable)")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, tokenBlacklist, emailService)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate, cfg.Server.IsProduction())
	userHandler := handler.NewUserHandler(userService, validate)
	healthHandler := handler.NewHealthHandler()

	// Create Fiber app
	app := bootstrap.NewFiberApp("Auth Service v1.0", cfg)

	// Access gate: any authenticated user
	requireAuth := middleware.AuthMiddleware(tokenService, tokenBlacklist)

	// Setup routes
	handler.SetupAuthRoutes(app, authHandler, userHandler, healthHandler, requireAuth)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Auth service starting on http://localhost%s", addr)
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
