// Package health serves the liveness, readiness and status probes.
package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is a dependency that can report whether it is reachable
type Pinger func(ctx context.Context) error

// StatsFunc reports counters of an in-process component
type StatsFunc func() map[string]interface{}

// HealthResponse is the body of /health
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Checks    map[string]string      `json:"checks,omitempty"`
	Stats     map[string]interface{} `json:"stats,omitempty"`
}

// Handler runs the probes against the registered dependencies
type Handler struct {
	version string
	checks  map[string]Pinger
	stats   map[string]StatsFunc
	timeout time.Duration
}

func NewHandler(version string) *Handler {
	return &Handler{
		version: version,
		checks:  make(map[string]Pinger),
		stats:   make(map[string]StatsFunc),
		timeout: 2 * time.Second,
	}
}

// AddCheck registers a dependency for /ready and /health
func (h *Handler) AddCheck(name string, ping Pinger) {
	h.checks[name] = ping
}

// AddStats registers counters reported by /health, such as cache statistics
func (h *Handler) AddStats(name string, stats StatsFunc) {
	h.stats[name] = stats
}

func (h *Handler) run(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	results := make(map[string]string, len(h.checks))
	healthy := true
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			common.LogWarn("dependency check failed", zap.String("dependency", name), zap.Error(err))
			results[name] = "unavailable"
			healthy = false
			continue
		}
		results[name] = "ok"
	}
	return results, healthy
}

// HealthCheck reports version, runtime stats and dependency status
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	checks, healthy := h.run(c.Request.Context())
	status := "ok"
	if !healthy {
		status = "degraded"
	}

	var stats map[string]interface{}
	if len(h.stats) > 0 {
		stats = make(map[string]interface{}, len(h.stats))
		for name, report := range h.stats {
			stats[name] = report()
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Checks: checks,
		Stats:  stats,
	})
}

// ReadinessCheck fails with 503 while any dependency is unreachable
func (h *Handler) ReadinessCheck(c *gin.Context) {
	checks, healthy := h.run(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}

// LivenessCheck always succeeds while the process serves requests
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
