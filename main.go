package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/course-catalog-service/internal/cache"
	"github.com/SAP-F-2025/course-catalog-service/internal/config"
	"github.com/SAP-F-2025/course-catalog-service/internal/events"
	"github.com/SAP-F-2025/course-catalog-service/internal/handlers"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories/memory"
	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
	"github.com/SAP-F-2025/course-catalog-service/pkg"
)

const sessionSweepInterval = time.Minute

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", "error", err)
		}
	}
	cache.CatalogCacheConfig.TTL = cfg.CacheTTL
	cacheManager := cache.NewCacheManager(redisClient)
	if redisClient != nil {
		if err := cacheManager.WarmupCache(ctx); err != nil {
			logger.Warn("Cache warmup failed", "error", err)
		}
	}

	// Initialize repositories
	repoManager := memory.NewRepositoryManager()
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize validator
	validator := validator.New()

	// Notification bus, with Kafka fan-out when brokers are configured
	var fanOut []message.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize kafka: %v", err)
		}
		fanOut = append(fanOut, kafkaPublisher)
	}
	bus := events.NewBus(cfg.NotificationTopic, slogLogger, fanOut...)
	inbox := events.NewInbox(events.DefaultInboxCapacity, slogLogger)
	if err := inbox.Run(ctx, bus); err != nil {
		log.Fatalf("Failed to subscribe notification inbox: %v", err)
	}

	// Sessions; ending one tells the inbox to forget it
	sessions := session.NewManager(session.ManagerConfig{
		TTL:    cfg.SessionTTL,
		Logger: slogLogger,
		OnEnd: func(s *session.Session) {
			event, err := events.NewEvent(events.TypeSessionEnded, s.ID(), nil)
			if err != nil {
				return
			}
			if err := bus.Publish(context.Background(), event); err != nil {
				slogLogger.Warn("Failed to publish session end", "session_id", s.ID(), "error", err)
			}
		},
	})
	go sessions.Run(ctx, sessionSweepInterval)

	// Initialize services
	smConfig := services.DefaultServiceManagerConfig()
	smConfig.ListingDebounce = cfg.ListingDebounce
	smConfig.SubmitDelay = cfg.SubmitDelay
	serviceManager := services.NewServiceManager(services.ServiceDeps{
		Repo:      repoManager.GetRepository(),
		RepoMgr:   repoManager,
		Cache:     cacheManager,
		Publisher: bus,
		Inbox:     inbox,
		Sessions:  sessions,
		Validator: validator,
		Logger:    slogLogger,
	}, smConfig)
	if err := serviceManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, sessions, validator, logger)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Pending submissions and listing timers stop with their sessions
	sessions.Shutdown()
	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}
	stop()

	if err := bus.Close(); err != nil {
		log.Printf("Failed to close event bus: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
