package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anamtn/portfolio-api/internal/config"
	"github.com/anamtn/portfolio-api/internal/logging"
	"github.com/anamtn/portfolio-api/internal/ratelimit"
	"github.com/anamtn/portfolio-api/internal/server"
	"github.com/anamtn/portfolio-api/internal/service"
	"github.com/anamtn/portfolio-api/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logConfig := &logging.LogConfig{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting portfolio API in %s mode", cfg.Environment)

	// Rate-limit backends: the in-process store always exists so requests
	// keep flowing when the durable store is down or unconfigured
	rlConfig := ratelimit.Config{
		Max:    cfg.RateLimitMax,
		Window: cfg.RateLimitWindow,
	}
	memStore := ratelimit.NewMemoryStore(rlConfig)

	var primary ratelimit.Store
	if cfg.RedisEnabled() {
		redisStore, err := ratelimit.NewRedisStore(cfg.RedisURL, cfg.RedisToken, rlConfig)
		if err != nil {
			logger.Warn("Failed to configure durable rate-limit store, using in-process store: %v", err)
		} else {
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := redisStore.Ping(pingCtx); err != nil {
				logger.Warn("Durable rate-limit store unreachable at startup: %v", err)
			} else {
				logger.Info("Durable rate-limit store connected")
			}
			cancel()

			primary = redisStore
			defer redisStore.Close()
		}
	} else {
		logger.Info("REDIS_URL/REDIS_TOKEN not set, using in-process rate-limit store")
	}

	limiter := ratelimit.NewLimiter(primary, memStore, logger)

	// Evict expired in-process records so the store doesn't grow without bound
	cleaner := tasks.NewRateLimitCleaner(memStore, 10*time.Minute)
	cleaner.Start()
	defer cleaner.Stop()

	var mailer service.Mailer
	if cfg.MailEnabled() {
		mailer = service.NewResendMailer(cfg.ResendAPIKey, cfg.ContactEmail)
		logger.Info("Email dispatch enabled, delivering to %s", cfg.ContactEmail)
	} else {
		mailer = service.NewConsoleMailer(logger)
		logger.Warn("RESEND_API_KEY not set, submissions will be logged instead of emailed")
	}

	srv := server.NewServer(cfg, limiter, mailer)
	srv.Init()

	// Shut down gracefully on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal %v, initiating shutdown...", sig)
		cancel()
	}()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
