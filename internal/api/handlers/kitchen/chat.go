package kitchen

import (
	"net/http"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"
	kitchenService "kitchen-assistant/internal/core/kitchen"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

type SendMessageRequest struct {
	Text                string   `json:"text"`
	SelectedIngredients []string `json:"selected_ingredients,omitempty"`
}

type AppendMessageRequest struct {
	Type     common.ChatMessageType `json:"type"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (h *Handler) HandleChatHistory(c *gin.Context) {
	history, err := h.chat.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// HandleSendMessage runs one assistant turn. A failed turn still returns the
// appended apology alongside the error envelope.
func (h *Handler) HandleSendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	lang := middleware.GetLanguage(c)
	result, err := h.chat.Send(c.Request.Context(), middleware.UserID(c), kitchenService.SendInput{
		Text:                req.Text,
		SelectedIngredients: req.SelectedIngredients,
		Language:            lang,
	})
	if err != nil {
		if result == nil {
			response.Error(c, err)
			return
		}
		_ = c.Error(err)
		c.JSON(response.Status(err), gin.H{
			"error":  response.Body(err, lang),
			"result": result,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleAppendMessage stores a message without calling the assistant
func (h *Handler) HandleAppendMessage(c *gin.Context) {
	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	msg, err := h.chat.Append(c.Request.Context(), middleware.UserID(c), req.Type, req.Content, req.Metadata)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) HandleClearChat(c *gin.Context) {
	n, err := h.chat.Clear(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *Handler) HandleNewSession(c *gin.Context) {
	if err := h.chat.StartNewSession(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
