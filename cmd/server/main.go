package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/atmavision/booking-system/internal/api"
	"github.com/atmavision/booking-system/internal/core/ports"
	"github.com/atmavision/booking-system/internal/infrastructure/config"
	"github.com/atmavision/booking-system/internal/infrastructure/db/memory"
	mongostore "github.com/atmavision/booking-system/internal/infrastructure/db/mongo"
	redisstore "github.com/atmavision/booking-system/internal/infrastructure/db/redis"
	"github.com/atmavision/booking-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "booking-system",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, cleanup, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("storage init failed")
	}
	defer cleanup()

	e := api.NewRouter(storage, cfg, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("storage", cfg.StorageBackend).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// buildStorage connects the substrate named by STORAGE_BACKEND. The returned
// cleanup closes any network client; for the in-memory backend it is a no-op.
func buildStorage(ctx context.Context, cfg *config.Config) (ports.Storage, func(), error) {
	switch cfg.StorageBackend {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStorage(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongostore.NewStorage(db), func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		return memory.New(), func() {}, nil
	}
}
