// @title Valodash Match History API
// @version 1.0
// @description Serves generated match histories for the valodash dashboard.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonie-n/valodash-backend/internal/config"
	"github.com/jonie-n/valodash-backend/internal/handlers"
	"github.com/jonie-n/valodash-backend/internal/logic"
	"github.com/jonie-n/valodash-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	s, cleanup, err := newStore(initCtx, cfg, logic.DefaultGenerator())
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer cleanup()

	h := handlers.New(handlers.Config{
		Store:          store.NewInstrumented(s, cfg.StoreBackend, logger),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", zap.String("addr", srv.Addr), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// newStore builds the configured backend. cleanup releases its connections.
func newStore(ctx context.Context, cfg *config.Config, gen logic.MatchGenerator) (store.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemoryStore(gen), noop, nil

	case config.BackendRedis:
		client, err := store.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return store.NewRedisStore(client, gen), func() { client.Close() }, nil

	case config.BackendPostgres:
		pool, err := store.NewPostgresPool(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		pg := store.NewPostgresStore(pool, gen)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return pg, pool.Close, nil

	default:
		return store.NewFileStore(cfg.DataDir, gen), noop, nil
	}
}
