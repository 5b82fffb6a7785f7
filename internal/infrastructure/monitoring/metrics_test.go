package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AIRequest("recipe", "success", time.Second)
		m.ProxyRequest(200, time.Second)
		m.CacheOperation("tips", "hit")
		m.ChatMessage("user")
		m.RecipeSaved()
	})
}

func TestAIRequestCounts(t *testing.T) {
	m := NewMetrics()
	m.AIRequest("recipe", "success", 2*time.Second)
	m.AIRequest("recipe", "RATE_LIMITED", time.Second)
	m.AIRequest("recipe", "success", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.aiRequestsTotal.WithLabelValues("recipe", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiRequestsTotal.WithLabelValues("recipe", "RATE_LIMITED")))
}

func TestHTTPMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(m.HTTPMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
