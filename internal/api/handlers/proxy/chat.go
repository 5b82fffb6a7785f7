// Package proxy exposes the chat-completion pass-through used by the generation client.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/core/service"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Forwarder sends a chat request to the model provider
type Forwarder interface {
	Forward(ctx context.Context, req ai.ChatRequest) (*service.UpstreamResult, error)
}

// ChatHandler handles /api/chat
type ChatHandler struct {
	upstream Forwarder
}

// NewChatHandler creates a ChatHandler
func NewChatHandler(upstream Forwarder) *ChatHandler {
	return &ChatHandler{
		upstream: upstream,
	}
}

type chatBody struct {
	Messages    json.RawMessage `json:"messages"`
	Temperature *float64        `json:"temperature"`
	MaxTokens   *int            `json:"max_tokens"`
}

// Chat forwards a message array upstream and relays the reply
func (h *ChatHandler) Chat(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, ai.ProxyError{Error: "Method not allowed"})
		return
	}

	var body chatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ai.ProxyError{Error: `Parameter "messages" must be an array`, Details: err.Error()})
		return
	}

	var messages []ai.Message
	raw := strings.TrimSpace(string(body.Messages))
	if !strings.HasPrefix(raw, "[") || json.Unmarshal(body.Messages, &messages) != nil {
		c.JSON(http.StatusBadRequest, ai.ProxyError{Error: `Parameter "messages" must be an array`})
		return
	}

	req := ai.ChatRequest{
		Messages:    messages,
		Temperature: service.DefaultTemperature,
		MaxTokens:   service.DefaultMaxTokens,
	}
	if body.Temperature != nil {
		req.Temperature = *body.Temperature
	}
	if body.MaxTokens != nil && *body.MaxTokens > 0 {
		req.MaxTokens = *body.MaxTokens
	}

	res, err := h.upstream.Forward(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingAPIKey) {
			common.LogError("upstream API key missing")
			c.JSON(http.StatusInternalServerError, ai.ProxyError{Error: "Upstream API key is not available"})
			return
		}
		common.LogError("upstream request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ai.ProxyError{
			Error:   "Failed to reach the upstream chat API",
			Details: err.Error(),
		})
		return
	}

	if res.Status < 200 || res.Status >= 300 {
		c.JSON(res.Status, ai.ProxyError{
			Error:   fmt.Sprintf("Lunos API error: %d", res.Status),
			Details: string(res.Body),
		})
		return
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(res.Status, contentType, res.Body)
}
