package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/housing-budget/internal/cache"
	"github.com/iwvelando/housing-budget/internal/config"
	"github.com/iwvelando/housing-budget/internal/server"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	catalog, err := cfg.Reference.LoadCatalog()
	if err != nil {
		logger.Fatal("failed to load reference catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	plans, closeCache, err := openCache(cfg.Cache)
	if err != nil {
		logger.Fatal("failed to open plan cache",
			zap.String("op", "main"),
			zap.String("backend", cfg.Cache.Backend),
			zap.Error(err),
		)
	}
	defer closeCache()

	handler, err := server.NewHandler(logger, server.Options{
		Catalog:       catalog,
		Cache:         plans,
		MaxUploadSize: cfg.UploadSizeBytes(),
		Version:       version,
	})
	if err != nil {
		logger.Fatal("failed to build handler",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	logger.Info("housing-budget server listening",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("cache", cfg.Cache.Backend),
		zap.Int("cities", len(catalog.Cities)),
		zap.String("version", version),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

// openCache builds the configured plan cache. The returned close function is
// always safe to call.
func openCache(cfg server.CacheConfig) (cache.Cache, func(), error) {
	switch cfg.Backend {
	case server.CacheNone:
		return nil, func() {}, nil
	case server.CacheRedis:
		redisCache := cache.NewRedis(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, cfg.TTL())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
			return nil, func() {}, err
		}
		return redisCache, func() { _ = redisCache.Close() }, nil
	default:
		return cache.NewMemory(cfg.TTL()), func() {}, nil
	}
}
