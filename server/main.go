package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"varsity/api/routes"
	"varsity/internal/auth"
	"varsity/internal/notifications"
	"varsity/internal/shared/config"
	"varsity/internal/shared/database"
	"varsity/pkg/logger"
	"varsity/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB (runs migrations and constraint setup)
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:            cfg.RateLimit.Enabled,
			WindowDuration:     cfg.RateLimit.WindowDuration,
			DefaultRequests:    cfg.RateLimit.DefaultRequests,
			PublicRequests:     cfg.RateLimit.PublicRequests,
			AuthRequests:       cfg.RateLimit.AuthRequests,
			OrderRequests:      cfg.RateLimit.OrderRequests,
			AdminRequests:      cfg.RateLimit.AdminRequests,
			AnalyticsRequests:  cfg.RateLimit.AnalyticsRequests,
			EnrollmentRequests: cfg.RateLimit.EnrollmentRequests,
			UserRequests:       cfg.RateLimit.UserRequests,
			HealthRequests:     cfg.RateLimit.HealthRequests,
			WhitelistedIPs:     cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Initialize Notification Service (Kafka producer/consumer + SMTP)
	notificationCtx, notificationCancel := context.WithCancel(context.Background())
	defer notificationCancel()

	notificationService := initNotifications(notificationCtx, cfg, db, appLogger)
	if notificationService != nil {
		defer func() {
			appLogger.Info("Stopping notification service...")
			if err := notificationService.Stop(); err != nil {
				appLogger.Error("Error stopping notification service", slog.Any("error", err))
			}
		}()
	}

	// Setup router with rate limiter and notification hooks
	router := setupRouter(cfg, db, rateLimiter, notificationService)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("redis_cache", (db.Redis != nil)),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// initNotifications wires up the Kafka-backed notification pipeline.
// Returns nil when the pipeline cannot be started; the API keeps running
// without it and notifications are simply not delivered.
func initNotifications(ctx context.Context, cfg *config.Config, db *database.DB, appLogger *logger.Logger) *notifications.Service {
	producer, err := notifications.NewKafkaProducer(cfg.Kafka)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
		appLogger.Info("Continuing without notification service - notifications will not be processed")
		return nil
	}

	emailService := notifications.NewSMTPEmailService(cfg.Email)

	consumer, err := notifications.NewKafkaConsumer(cfg.Kafka, emailService)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka consumer", slog.Any("error", err))
		appLogger.Info("Continuing without notification service - notifications will not be processed")
		return nil
	}

	userDirectory := auth.NewRepository(db.GetPostgreSQL())
	notificationService := notifications.NewService(producer, consumer, userDirectory)

	go func() {
		if err := notificationService.Start(ctx); err != nil {
			appLogger.Error("Failed to start notification service", slog.Any("error", err))
		}
	}()

	appLogger.Info("Notification service initialized and started")
	return notificationService
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.RateLimiter, notificationService *notifications.Service) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, db, notificationService)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
