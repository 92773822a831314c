package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notehub/notes-backend/pkg/metrics"
)

// RequestMetricsMiddleware counts every request by method, matched route and
// response status. The route template (not the raw path) is used as the label
// to keep cardinality bounded.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
