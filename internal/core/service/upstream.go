package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/infrastructure/config"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Defaults for requests that leave temperature or max_tokens unset
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 8192
)

// ErrMissingAPIKey is returned before any network call when no upstream key is configured
var ErrMissingAPIKey = errors.New("upstream API key is not configured")

// UpstreamResult is the raw upstream reply, passed back to the caller untouched
type UpstreamResult struct {
	Status      int
	ContentType string
	Body        []byte
}

// UpstreamService forwards chat-completion requests to the model provider
type UpstreamService struct {
	config  config.LunosConfig
	client  *resty.Client
	metrics *monitoring.Metrics
}

// NewUpstreamService creates the forwarder. The bearer credential is attached per request.
func NewUpstreamService(cfg config.LunosConfig, metrics *monitoring.Metrics) *UpstreamService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetLogger(common.NewHTTPLogger("upstream")).
		SetHeader("Content-Type", "application/json")

	return &UpstreamService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// Forward sends the messages upstream with the configured model. Non-2xx replies are
// returned as results, not errors; only transport failures are errors.
func (s *UpstreamService) Forward(ctx context.Context, req ai.ChatRequest) (*UpstreamResult, error) {
	if s.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload := ai.UpstreamRequest{
		Model:       s.config.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if payload.MaxTokens <= 0 {
		payload.MaxTokens = DefaultMaxTokens
	}

	common.LogDebug("forwarding chat completion",
		zap.String("model", payload.Model),
		zap.Int("messages", len(payload.Messages)),
		zap.Float64("temperature", payload.Temperature),
		zap.Int("max_tokens", payload.MaxTokens),
	)

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.config.APIKey).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		s.metrics.ProxyRequest(0, time.Since(start))
		return nil, fmt.Errorf("failed to send request upstream: %w", err)
	}
	s.metrics.ProxyRequest(resp.StatusCode(), time.Since(start))

	if resp.IsError() {
		common.LogWarn("upstream returned error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", common.Truncate(resp.String(), 200)),
		)
	}

	return &UpstreamResult{
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}
