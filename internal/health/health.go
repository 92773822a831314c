package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/notehub/notes-backend/internal/config"
)

// RegisterHealthRoutes registers the liveness and readiness endpoints.
func RegisterHealthRoutes(r *gin.Engine, cfg *config.Config, rdb *redis.Client, started time.Time) {
	r.GET("/", Healthy)
	r.GET("/health", Healthy)
	r.GET("/ready", Readiness(cfg, rdb, started))
}

// Healthy is the liveness probe; it has no dependencies.
func Healthy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}

// Readiness reports 200 only when every configured dependency is reachable,
// 503 with a deps map otherwise. Note storage is in-process and therefore
// always ready; Redis only counts when the rate limiter is configured to
// use it.
func Readiness(cfg *config.Config, rdb *redis.Client, started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		ready := true
		deps := map[string]bool{"storage": true}
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil && rdb.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(started).String()})
	}
}
