package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vending-machine/config"
	httpHandler "vending-machine/internal/adapter/http/handler"
	"vending-machine/internal/adapter/http/middleware"
	pgStorage "vending-machine/internal/adapter/storage/postgres"
	redisStorage "vending-machine/internal/adapter/storage/redis"
	"vending-machine/internal/core/ports"
	"vending-machine/internal/service"
	"vending-machine/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("VM_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("machine", cfg.Machine.Name).
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting vending machine API")

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Sales journal: PostgreSQL when enabled, log only otherwise
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, cfg.Machine.Name, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate schema")
		}
		log.Info().Msg("PostgreSQL connected")

		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}
	auditSvc := service.NewAuditService(auditRepo, log)

	// Idempotency and rate limiting need Redis
	var (
		idempotencyCache ports.IdempotencyCache
		rateLimitStore   ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, cfg.Machine.Name, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else if cfg.RateLimit.Enabled {
		log.Warn().Msg("Rate limiting requires Redis, running without it")
	}

	// Core services
	machineSvc, err := service.NewConfiguredMachine(cfg.Machine, auditSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to stock machine")
	}
	dispenseSvc := service.NewDispenseService(machineSvc, idempotencyCache, cfg.Machine.Name, log)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT secret is empty, admin endpoints will reject every login")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, hashSvc, tokenSvc, log)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MachineSvc:     machineSvc,
		DispenseSvc:    dispenseSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.DefaultRateLimitRules(cfg.RateLimit.Limit, cfg.RateLimit.Window),
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := auditSvc.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Audit journal not fully flushed")
	}

	log.Info().Msg("Server exited")
}
