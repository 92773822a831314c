package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notes-backend/pkg/metrics"
)

func TestRequestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestMetricsMiddleware())
	r.GET("/things/:id", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/things/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/things/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/things/:id", "200"))
	require.Equal(t, before+1, after)

	// unmatched routes are counted under a fixed label
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
