package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.HealthCheck)
	r.GET("/ready", h.ReadinessCheck)
	r.GET("/live", h.LivenessCheck)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProbesHealthy(t *testing.T) {
	h := NewHandler("1.2.3")
	h.AddCheck("database", func(context.Context) error { return nil })
	r := newRouter(h)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "ok", resp.Checks["database"])

	assert.Equal(t, http.StatusOK, get(r, "/ready").Code)
	assert.Equal(t, http.StatusOK, get(r, "/live").Code)
}

func TestProbesDegraded(t *testing.T) {
	h := NewHandler("dev")
	h.AddCheck("redis", func(context.Context) error { return errors.New("connection refused") })
	r := newRouter(h)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)

	w = get(r, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")

	assert.Equal(t, http.StatusOK, get(r, "/live").Code)
}

func TestHealthReportsStats(t *testing.T) {
	h := NewHandler("dev")
	h.AddStats("cache", func() map[string]interface{} {
		return map[string]interface{}{"hits": 3, "misses": 1}
	})

	w := get(newRouter(h), "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	cacheStats, ok := resp.Stats["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, cacheStats["hits"])
	assert.EqualValues(t, 1, cacheStats["misses"])
}
