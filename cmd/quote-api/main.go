package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/postrepublic/quote-system/internal/api"
	"github.com/postrepublic/quote-system/internal/core/service"
	mongodb "github.com/postrepublic/quote-system/internal/infrastructure/db/mongo"
	redisdb "github.com/postrepublic/quote-system/internal/infrastructure/db/redis"
	"github.com/postrepublic/quote-system/internal/infrastructure/notify"
	"github.com/postrepublic/quote-system/internal/infrastructure/queue"
	"github.com/postrepublic/quote-system/internal/pkg/config"
	"github.com/postrepublic/quote-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	rateRepo := mongodb.NewRateRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("order index creation failed")
	}
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user index creation failed")
	}

	rateCache := redisdb.NewRateCache(rdb, rateRepo, cfg.Redis.RateTTL, log)

	// --- Notification pipeline ---
	notifier := notify.NewWhatsAppNotifier(cfg.Notify.WebhookURL, cfg.Notify.WhatsApp, log)
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notifier, log)
	dispatcher.Start(ctx)

	// --- Services ---
	quoteService := service.NewQuoteService(rateCache, log)
	orderService := service.NewOrderService(orderRepo, quoteService, dispatcher, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	e := api.NewRouter(api.Deps{
		Quotes:    quoteService,
		Orders:    orderService,
		Auth:      authService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("quote api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
