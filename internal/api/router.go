package api

import (
	"context"
	"net/http"
	"time"

	"drink-recommender/internal/api/handlers/health"
	recHandler "drink-recommender/internal/api/handlers/recommendation"
	"drink-recommender/internal/api/middleware"
	"drink-recommender/internal/core/ai"
	"drink-recommender/internal/core/cache"
	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/core/entitlement"
	"drink-recommender/internal/core/history"
	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/core/recommend"
	"drink-recommender/internal/infrastructure/config"
	"drink-recommender/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (10MB)，照片以 base64 上傳
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, redisClient *redis.Client) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 速率限制
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 酒款目錄
	drinkCatalog := catalog.NewStaticProvider()

	// OpenRouter 文字生成服務，分析與推薦共用同一個 client
	openRouter := ai.NewOpenRouterService(cfg)
	analyzer := ai.NewFoodAnalyzer(openRouter)
	generator := ai.NewGenerativeRecommender(openRouter, drinkCatalog)

	// 快取與歷史
	var cacheStore recommend.CacheStore
	if cfg.Cache.Enabled && redisClient != nil {
		cacheStore = cache.NewRedisStore(redisClient, &cfg.Cache)
	}
	historyStore := history.NewRedisStore(redisClient)

	// 權益閘門，每日配額以服務所在時區的午夜重置
	ledger := entitlement.NewRedisLedger(redisClient, time.Local)
	gate := entitlement.NewGate(ledger, cfg.Quota.FreeDailyLimit)

	// 評分引擎，權重來自設定
	engine := pairing.NewEngine(pairing.Weights{
		Menu:       cfg.Scoring.MenuWeight,
		Situation:  cfg.Scoring.SituationWeight,
		Taste:      cfg.Scoring.TasteWeight,
		Popularity: cfg.Scoring.PopularityWeight,
	}, nil)

	recommendSvc := recommend.NewService(recommend.Options{
		Catalog:    drinkCatalog,
		Analyzer:   analyzer,
		Generator:  generator,
		Cache:      cacheStore,
		History:    historyStore,
		Gate:       gate,
		Engine:     engine,
		GenTimeout: cfg.OpenRouter.Timeout,
		CacheKey:   cache.Key,
	})

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/health/redis", health.RedisCheck(redisClient))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	apiGroup := router.Group("/api/v1")
	{
		handler := recHandler.NewHandler(recommendSvc)

		recGroup := apiGroup.Group("/recommendations")
		{
			// 建立推薦
			recGroup.POST("", handler.HandleCreate)

			// 推薦歷史
			recGroup.GET("", handler.HandleList)

			// 單筆推薦
			recGroup.GET("/:id", handler.HandleGet)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_enabled", cacheStore != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
