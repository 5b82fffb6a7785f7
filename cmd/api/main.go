package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen-assistant/internal/api"
	"kitchen-assistant/internal/core/ai/cache"
	"kitchen-assistant/internal/infrastructure/config"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/infrastructure/redisstore"
	"kitchen-assistant/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// the logger needs the config
	if err := common.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("starting application",
		zap.String("lunos_api_key", cfg.Lunos.APIKey),
		zap.String("lunos_model", cfg.Lunos.Model),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
	)
	if cfg.Lunos.APIKey == "" {
		common.LogWarn("LUNOS_API_KEY is not set, /api/chat will answer 500")
	}

	db, err := persistence.Open(cfg.Database)
	if err != nil {
		common.LogFatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := persistence.Close(db); err != nil {
			common.LogError("failed to close database", zap.Error(err))
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisstore.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			common.LogFatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	var store cache.Store
	if cfg.Cache.Enabled {
		switch cfg.Cache.Driver {
		case "redis":
			store = cache.NewRedisStore(redisClient, cfg.Cache.TTL)
		default:
			store = cache.NewManager(cfg.Cache)
		}
		defer store.Close()
	}

	router, err := api.SetupRouter(cfg, api.Dependencies{
		DB:      db,
		Redis:   redisClient,
		Cache:   store,
		Metrics: monitoring.NewMetrics(),
	})
	if err != nil {
		common.LogFatal("failed to setup router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("server exited")
}
