package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kitchen-assistant/internal/core/ai/cache"
	"kitchen-assistant/internal/infrastructure/config"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Version: "test", Debug: false},
		Server: config.ServerConfig{Port: 8080, RequestTimeout: 5 * time.Second, MaxBodyBytes: 1 << 20, AllowedOrigins: []string{"*"}},
		Lunos:  config.LunosConfig{BaseURL: "http://127.0.0.1:1", MaxTokens: 8192, Timeout: time.Second},
		Proxy:  config.ProxyConfig{URL: "http://127.0.0.1:1/api/chat", Timeout: time.Second},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    "memory",
		},
		Session: config.SessionConfig{Driver: "memory"},
		Auth:    config.AuthConfig{Enabled: true, JWTSecret: "secret"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, opts ...func(*Dependencies)) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() { _ = persistence.Close(db) })

	deps := Dependencies{DB: db, Metrics: monitoring.NewMetrics()}
	for _, opt := range opts {
		opt(&deps)
	}
	router, err := SetupRouter(cfg, deps)
	require.NoError(t, err)
	return router
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouterProbes(t *testing.T) {
	r := newTestRouter(t, testConfig())

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/live", "").Code)

	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSetupRouterReportsCacheStats(t *testing.T) {
	store := cache.NewManager(config.CacheConfig{Enabled: true, MaxSize: 10, TTL: time.Minute})
	t.Cleanup(func() { _ = store.Close() })
	r := newTestRouter(t, testConfig(), func(d *Dependencies) { d.Cache = store })

	w := serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Stats map[string]map[string]interface{} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body.Stats, "cache")
	assert.EqualValues(t, 10, body.Stats["cache"]["max_size"])

	w = serve(newTestRouter(t, testConfig()), http.MethodGet, "/health", "")
	assert.NotContains(t, w.Body.String(), `"stats"`)
}

func TestSetupRouterRequiresToken(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := serve(r, http.MethodGet, "/api/v1/ingredients", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/translations?name=garlic", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRouterAuthDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = false
	r := newTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/api/v1/ingredients", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/ai/detect-language", `{"text":"hello there"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"en"`)
}

func TestSetupRouterProxy(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := serve(r, http.MethodGet, "/api/chat", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// no upstream key configured
	w = serve(r, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSetupRouterRedisSessionWithoutClient(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Driver = "redis"
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = persistence.Close(db) })

	_, err = SetupRouter(cfg, Dependencies{DB: db})
	assert.Error(t, err)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	some := corsConfig([]string{"https://kitchen.example"})
	assert.Equal(t, []string{"https://kitchen.example"}, some.AllowOrigins)
	assert.True(t, some.AllowCredentials)
}
