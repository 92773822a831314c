package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/notehub/notes-backend/internal/config"
	"github.com/notehub/notes-backend/internal/health"
	"github.com/notehub/notes-backend/internal/note/handler"
	"github.com/notehub/notes-backend/internal/note/service"
	"github.com/notehub/notes-backend/pkg/logger"
	"github.com/notehub/notes-backend/pkg/metrics"
	"github.com/notehub/notes-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: env=%s redis=%v rate_limit=%v",
		cfg.Server.Environment, cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware: set common headers and respond to OPTIONS.
	// (Production deployments should restrict CORS_ALLOW_ORIGINS.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORS.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Prometheus: register collectors, count requests, expose /metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.Use(middleware.RequestMetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to Redis early so the rate limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter enabled (redis, %gr/s burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter enabled (memory, %gr/s burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	health.RegisterHealthRoutes(r, cfg, rdb, startTime)

	svc := service.NewMemoryService()
	handler.RegisterNoteRoutes(r, svc)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("notes backend listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
