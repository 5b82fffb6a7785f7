package api

import (
	"context"
	"fmt"
	"time"

	"kitchen-assistant/internal/api/handlers/assistant"
	"kitchen-assistant/internal/api/handlers/health"
	kitchenHandler "kitchen-assistant/internal/api/handlers/kitchen"
	"kitchen-assistant/internal/api/handlers/proxy"
	"kitchen-assistant/internal/api/middleware"
	"kitchen-assistant/internal/core/ai/cache"
	"kitchen-assistant/internal/core/ai/client"
	"kitchen-assistant/internal/core/kitchen"
	"kitchen-assistant/internal/core/service"
	"kitchen-assistant/internal/infrastructure/config"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/infrastructure/redisstore"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the connections opened by main
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client // nil unless redis is enabled
	Cache   cache.Store   // nil when the advisory cache is disabled
	Metrics *monitoring.Metrics
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID", middleware.DevUserHeader},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func newSessionStore(cfg *config.Config, deps Dependencies) (kitchen.SessionStore, error) {
	switch cfg.Session.Driver {
	case "redis":
		if deps.Redis == nil {
			return nil, fmt.Errorf("redis session store requires a redis client")
		}
		return redisstore.NewSessionStore(deps.Redis, cfg.Session.TTL), nil
	default:
		return kitchen.NewMemorySessionStore(), nil
	}
}

// SetupRouter wires the services and mounts every route
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if deps.DB == nil {
		return nil, fmt.Errorf("database is required")
	}
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())
	router.Use(deps.Metrics.HTTPMiddleware())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	router.Use(middleware.Language())

	sessions, err := newSessionStore(cfg, deps)
	if err != nil {
		return nil, err
	}

	upstream := service.NewUpstreamService(cfg.Lunos, deps.Metrics)
	opts := []client.Option{client.WithMetrics(deps.Metrics)}
	if deps.Cache != nil {
		opts = append(opts, client.WithCache(deps.Cache))
	}
	generator := client.New(cfg.Proxy.URL, cfg.Lunos.MaxTokens, cfg.Proxy.Timeout, opts...)

	ingredientRepo := persistence.NewIngredientRepository(deps.DB)
	recipeRepo := persistence.NewRecipeRepository(deps.DB)
	chatRepo := persistence.NewChatRepository(deps.DB)

	ingredientSvc := kitchen.NewIngredientService(ingredientRepo)
	recipeSvc := kitchen.NewRecipeService(recipeRepo, deps.Metrics)
	chatSvc := kitchen.NewChatService(chatRepo, ingredientRepo, generator, sessions, deps.Metrics)
	dashboardSvc := kitchen.NewDashboardService(ingredientSvc, recipeRepo)

	common.LogInfo("services initialized",
		zap.Bool("cache_enabled", deps.Cache != nil),
		zap.String("session_driver", cfg.Session.Driver),
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("model", cfg.Lunos.Model),
		zap.String("proxy_url", cfg.Proxy.URL),
	)

	healthHandler := health.NewHandler(cfg.App.Version)
	healthHandler.AddCheck("database", func(ctx context.Context) error {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	if deps.Redis != nil {
		healthHandler.AddCheck("redis", func(ctx context.Context) error {
			return deps.Redis.Ping(ctx).Err()
		})
	}
	if reporter, ok := deps.Cache.(interface{ GetStats() map[string]interface{} }); ok {
		healthHandler.AddStats("cache", reporter.GetStats)
	}
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	router.Any("/api/chat", proxy.NewChatHandler(upstream).Chat)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Auth))
	{
		assistant.NewHandler(generator).Register(v1.Group("/ai"))
		kitchenHandler.NewHandler(ingredientSvc, recipeSvc, chatSvc, dashboardSvc).Register(v1)
	}

	common.LogInfo("router setup completed",
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)
	return router, nil
}
