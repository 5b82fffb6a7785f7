package kitchen

import (
	"net/http"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"
	kitchenService "kitchen-assistant/internal/core/kitchen"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleListRecipes(c *gin.Context) {
	rows, err := h.recipes.List(c.Request.Context(), middleware.UserID(c), kitchenService.RecipeFilter{
		Search:       c.Query("search"),
		Difficulties: splitList(c, "difficulty"),
		Cuisines:     splitList(c, "cuisine"),
		Sort:         c.Query("sort"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": rows})
}

// HandleSaveRecipe stores a generated recipe
func (h *Handler) HandleSaveRecipe(c *gin.Context) {
	var req common.GeneratedRecipe
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	row, err := h.recipes.Save(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) HandleGetRecipe(c *gin.Context) {
	row, err := h.recipes.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe":    row,
		"generated": kitchenService.ToGenerated(*row),
	})
}

func (h *Handler) HandleDeleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
