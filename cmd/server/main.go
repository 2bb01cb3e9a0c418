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

	"github.com/dishlens/backend/config"
	httpDelivery "github.com/dishlens/backend/internal/delivery/http"
	"github.com/dishlens/backend/internal/infrastructure/cache"
	"github.com/dishlens/backend/internal/infrastructure/dataset"
	"github.com/dishlens/backend/internal/logger"
	"github.com/dishlens/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	zlog.Info("starting DishLens backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("dataset", cfg.Dataset.Path),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
		zap.Int("rate_limit_per_ip", cfg.RateLimit.PerIP))

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	loader := dataset.NewFileLoader(cfg.Dataset.Path, zlog)

	// Initialize usecase layer
	catalog := usecase.NewCatalogService(
		loader,
		memoryCache,
		usecase.CatalogServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Search: usecase.SearchConfig{
				MinScore:            cfg.Search.MinScore,
				EnableFuzzyMatching: cfg.Search.EnableFuzzyMatching,
				EnableDebugLogging:  cfg.Search.EnableDebugLogging,
			},
		},
		zlog,
	)

	// Warm the catalog; a missing dataset is reported per request instead of aborting
	if names, err := catalog.DishNames(context.Background()); err != nil {
		zlog.Warn("dish catalog not loaded", zap.Error(err))
	} else {
		zlog.Info("dish catalog ready", zap.Int("dishes", len(names)))
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalog, httpDelivery.HandlerConfig{
		DefaultTarget: cfg.Calories.DefaultTarget,
		GoalDelta:     cfg.Calories.GoalDelta,
		ShopURL:       cfg.Ingredients.ShopURL,
	}, zlog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, zlog)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// SIGHUP reloads the dataset; SIGINT and SIGTERM stop the server
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for running := true; running; {
		select {
		case <-reload:
			ctx := context.Background()
			if err := catalog.Refresh(ctx); err != nil {
				zlog.Error("failed to drop dish catalog", zap.Error(err))
				continue
			}
			if names, err := catalog.DishNames(ctx); err != nil {
				zlog.Warn("dish catalog not reloaded", zap.Error(err))
			} else {
				zlog.Info("dish catalog reloaded", zap.Int("dishes", len(names)))
			}
		case <-quit:
			running = false
		}
	}

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
}
