package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"litreview/database"
	"litreview/internal/config"
	"litreview/internal/logging"
	"litreview/internal/microservices/http-api/handler"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/repository"
	"litreview/internal/microservices/http-api/service"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.GoEnv,
		}); err != nil {
			log.Printf("sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat, logging.NewSentryHandler(sentry.CurrentHub()))
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("database_handle_failed", "error", err)
		os.Exit(1)
	}

	// relation sets are cached only when Redis is configured
	var relationCache repository.RelationCache
	if cfg.RedisURL != "" {
		redisCache, err := repository.NewRedisRelationCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTLDuration())
		if err != nil {
			logger.Warn("redis_unavailable", "error", err)
		} else {
			relationCache = redisCache
			defer redisCache.Close()
			logger.Info("redis_connected")
		}
	}

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blockRepo := repository.NewBlockRepository(db)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	ticketService := service.NewTicketService(ticketRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, ticketRepo)
	relationService := service.NewRelationService(userRepo, followRepo, blockRepo, relationCache)
	feedService := service.NewFeedService(relationService, ticketRepo, reviewRepo, service.FeedPolicy{
		HonorBlocks:         cfg.FeedHonorBlocks,
		HideReviewedTickets: cfg.FeedHideReviewedTickets,
	}, cfg.FeedPageSize)

	limiter := middleware.NewViewerRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := handler.NewRouter(handler.Handlers{
		Auth:   handler.NewAuthHandler(authService, cfg.AccessTokenTTL, cfg.IsProduction()),
		Ticket: handler.NewTicketHandler(ticketService),
		Review: handler.NewReviewHandler(reviewService, ticketService),
		Follow: handler.NewFollowHandler(relationService),
		Block:  handler.NewBlockHandler(relationService),
		Feed:   handler.NewFeedHandler(feedService),
		Health: handler.NewHealthHandler(sqlDB),
	}, handler.RouterOptions{
		AuthService: authService,
		RateLimiter: limiter,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		Middleware:  []gin.HandlerFunc{sentrygin.New(sentrygin.Options{Repanic: true})},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Sweep()
			}
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", server.Addr, "env", cfg.GoEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	logger.Info("server_stopped_gracefully")
}
