package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notes-backend/internal/config"
)

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestHealthy(t *testing.T) {
	r := gin.New()
	RegisterHealthRoutes(r, &config.Config{}, nil, time.Now())

	for _, path := range []string{"/", "/health"} {
		w := serve(r, path)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "Healthy", body["message"])
	}
}

func TestReadiness_NoRedisDependency(t *testing.T) {
	// limiter disabled: nothing to check, always ready
	r := gin.New()
	RegisterHealthRoutes(r, &config.Config{}, nil, time.Now())

	w := serve(r, "/ready")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ready", body.Status)
	require.True(t, body.Deps["storage"])
}

func TestReadiness_RedisUp(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	cfg := &config.Config{}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.UseRedis = true

	r := gin.New()
	RegisterHealthRoutes(r, cfg, client, time.Now())

	w := serve(r, "/ready")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ready", body.Status)
	require.True(t, body.Deps["redis"])
}

func TestReadiness_RedisDown(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.UseRedis = true

	// limiter wants Redis but no client is connected
	r := gin.New()
	RegisterHealthRoutes(r, cfg, nil, time.Now())

	w := serve(r, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "not_ready", body.Status)
	require.False(t, body.Deps["redis"])
	require.True(t, body.Deps["storage"])
}
