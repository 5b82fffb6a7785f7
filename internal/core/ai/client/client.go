// Package client talks to the chat proxy and turns its replies into recipes, answers and lists.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/core/ai/cache"
	"kitchen-assistant/internal/core/ai/parser"
	"kitchen-assistant/internal/core/ai/prompt"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// operation names used for metrics, logs and cache keys
const (
	OpRecipe        = "recipe"
	OpQuestion      = "question"
	OpTips          = "tips"
	OpSubstitutions = "substitutions"
)

// Client sends two-message exchanges to the proxy. It never retries.
type Client struct {
	http      *resty.Client
	proxyURL  string
	maxTokens int
	cache     cache.Store
	metrics   *monitoring.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithCache enables caching of advisory answers
func WithCache(store cache.Store) Option {
	return func(c *Client) {
		c.cache = store
	}
}

// WithMetrics records per-call metrics
func WithMetrics(m *monitoring.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client for the proxy at proxyURL
func New(proxyURL string, maxTokens int, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			SetLogger(common.NewHTTPLogger("proxy_client")).
			SetHeader("Content-Type", "application/json"),
		proxyURL:  proxyURL,
		maxTokens: maxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateRecipe validates req, asks for a recipe and parses the reply
func (c *Client) GenerateRecipe(ctx context.Context, req common.RecipeRequest) (*common.GeneratedRecipe, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	content, err := c.call(ctx, OpRecipe, prompt.RecipeMessages(req), prompt.RecipeTemperature)
	if err != nil {
		return nil, err
	}

	recipe := parser.ParseRecipe(content)
	return &recipe, nil
}

// AnswerQuestion returns a short free-form answer
func (c *Client) AnswerQuestion(ctx context.Context, question, questionContext string, lang common.Language) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", common.NewValidationError("question must not be empty")
	}

	return c.cached(ctx, OpQuestion, lang, []string{question, questionContext}, func() (string, error) {
		return c.call(ctx, OpQuestion, prompt.QuestionMessages(question, questionContext, lang), prompt.AdvisoryTemperature)
	})
}

// GetTips returns cooking tips for a recipe
func (c *Client) GetTips(ctx context.Context, recipe string, lang common.Language) ([]string, error) {
	recipe = strings.TrimSpace(recipe)
	if recipe == "" {
		return nil, common.NewValidationError("recipe must not be empty")
	}

	content, err := c.cached(ctx, OpTips, lang, []string{recipe}, func() (string, error) {
		return c.call(ctx, OpTips, prompt.TipsMessages(recipe, lang), prompt.AdvisoryTemperature)
	})
	if err != nil {
		return nil, err
	}
	return parser.ParseStringList(content, parser.DefaultListLimit), nil
}

// SuggestSubstitutions returns replacements for one ingredient
func (c *Client) SuggestSubstitutions(ctx context.Context, ingredient string, lang common.Language) ([]string, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return nil, common.NewValidationError("ingredient must not be empty")
	}

	content, err := c.cached(ctx, OpSubstitutions, lang, []string{ingredient}, func() (string, error) {
		return c.call(ctx, OpSubstitutions, prompt.SubstitutionMessages(ingredient, lang), prompt.AdvisoryTemperature)
	})
	if err != nil {
		return nil, err
	}
	return parser.ParseStringList(content, parser.DefaultListLimit), nil
}

// cached serves advisory calls from the cache when one is configured. Cache failures are logged and ignored.
func (c *Client) cached(ctx context.Context, op string, lang common.Language, parts []string, fetch func() (string, error)) (string, error) {
	if c.cache == nil {
		return fetch()
	}

	key := cache.Key(op, string(lang), parts...)
	if val, err := c.cache.Get(ctx, key); err == nil {
		common.LogCacheHit(op)
		c.metrics.CacheOperation(op, "hit")
		return val, nil
	} else if !errors.Is(err, common.ErrCacheMiss) {
		common.LogWarn("cache lookup failed", zap.String("operation", op), zap.Error(err))
		c.metrics.CacheOperation(op, "error")
	} else {
		common.LogCacheMiss(op)
		c.metrics.CacheOperation(op, "miss")
	}

	val, err := fetch()
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, val); err != nil {
		common.LogWarn("cache store failed", zap.String("operation", op), zap.Error(err))
	}
	return val, nil
}

// call performs one exchange and records its outcome
func (c *Client) call(ctx context.Context, op string, messages []ai.Message, temperature float64) (string, error) {
	start := time.Now()
	content, err := c.complete(ctx, messages, temperature)
	duration := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = common.ErrCodeUpstreamError
		if ce, ok := common.AsCustomError(err); ok {
			outcome = ce.Code
		}
	}
	c.metrics.AIRequest(op, outcome, duration)
	common.LogAICall(op, duration, err)
	return content, err
}

func (c *Client) complete(ctx context.Context, messages []ai.Message, temperature float64) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(ai.ChatRequest{
			Messages:    messages,
			Temperature: temperature,
			MaxTokens:   c.maxTokens,
		}).
		Post(c.proxyURL)
	if err != nil && (resp == nil || resp.StatusCode() == 0) {
		return "", common.ErrConnectivityFailure.Wrap(err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var failure ai.ProxyError
		_ = json.Unmarshal(resp.Body(), &failure)
		detail := failure.Error
		if detail == "" {
			detail = strings.TrimSpace(resp.String())
		}
		common.LogDebug("proxy returned error",
			zap.Int("status", resp.StatusCode()),
			zap.String("error", detail),
			zap.String("details", failure.Details),
		)
		return "", statusError(resp.StatusCode(), detail)
	}

	var result ai.Response
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.ErrEmptyResponse.Wrap(err)
	}
	if len(result.Choices) == 0 {
		return "", common.NewError(common.ErrCodeEmptyResponse, "no response generated, please try with different input", http.StatusBadGateway, nil)
	}
	content := result.Content()
	if strings.TrimSpace(content) == "" {
		return "", common.ErrEmptyResponse
	}
	return content, nil
}

// statusError maps a proxy status code onto an error category
func statusError(status int, detail string) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrGenerationInvalidRequest
	case http.StatusUnauthorized:
		return common.ErrServiceMisconfigured
	case http.StatusTooManyRequests:
		return common.ErrRateLimited
	case http.StatusInternalServerError:
		return common.ErrServiceUnavailable
	}
	if detail == "" {
		detail = "unknown error"
	}
	return common.NewError(common.ErrCodeUpstreamError, fmt.Sprintf("service error: %d - %s", status, detail), http.StatusBadGateway, nil)
}
