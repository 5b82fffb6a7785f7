// Package kitchen exposes the per-user pantry, recipes, chat and dashboard.
package kitchen

import (
	"strings"
	"time"

	kitchenService "kitchen-assistant/internal/core/kitchen"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler serves the user-scoped endpoints under /api/v1
type Handler struct {
	ingredients *kitchenService.IngredientService
	recipes     *kitchenService.RecipeService
	chat        *kitchenService.ChatService
	dashboard   *kitchenService.DashboardService
}

func NewHandler(ingredients *kitchenService.IngredientService, recipes *kitchenService.RecipeService, chat *kitchenService.ChatService, dashboard *kitchenService.DashboardService) *Handler {
	return &Handler{
		ingredients: ingredients,
		recipes:     recipes,
		chat:        chat,
		dashboard:   dashboard,
	}
}

// Register mounts the routes on rg, which must already run the auth middleware
func (h *Handler) Register(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.HandleListIngredients)
		ingredients.POST("", h.HandleAddIngredient)
		ingredients.GET("/expiring", h.HandleExpiringIngredients)
		ingredients.GET("/:id", h.HandleGetIngredient)
		ingredients.PATCH("/:id", h.HandleUpdateIngredient)
		ingredients.DELETE("/:id", h.HandleDeleteIngredient)
	}

	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.HandleListRecipes)
		recipes.POST("", h.HandleSaveRecipe)
		recipes.GET("/:id", h.HandleGetRecipe)
		recipes.DELETE("/:id", h.HandleDeleteRecipe)
	}

	chat := rg.Group("/chat")
	{
		chat.GET("/messages", h.HandleChatHistory)
		chat.POST("/messages", h.HandleSendMessage)
		chat.POST("/messages/append", h.HandleAppendMessage)
		chat.DELETE("/messages", h.HandleClearChat)
		chat.POST("/sessions", h.HandleNewSession)
	}

	rg.GET("/translations", HandleTranslate)
	rg.GET("/dashboard", h.HandleDashboard)
}

// parseDate accepts YYYY-MM-DD or RFC 3339; empty yields nil
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, common.NewValidationError("expiry_date must be YYYY-MM-DD or RFC 3339")
}

// splitList reads a repeated or comma separated query parameter
func splitList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
