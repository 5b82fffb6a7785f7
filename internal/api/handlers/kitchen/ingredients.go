package kitchen

import (
	"net/http"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"
	kitchenService "kitchen-assistant/internal/core/kitchen"

	"github.com/gin-gonic/gin"
)

type AddIngredientRequest struct {
	Name       string   `json:"name"`
	NameEN     string   `json:"name_en,omitempty"`
	NameID     string   `json:"name_id,omitempty"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit,omitempty"`
	Category   string   `json:"category,omitempty"`
	ExpiryDate string   `json:"expiry_date,omitempty"`
}

type UpdateIngredientRequest struct {
	Name       *string  `json:"name,omitempty"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Unit       *string  `json:"unit,omitempty"`
	Category   *string  `json:"category,omitempty"`
	ExpiryDate *string  `json:"expiry_date,omitempty"`
}

func (h *Handler) HandleListIngredients(c *gin.Context) {
	views, err := h.ingredients.List(c.Request.Context(), middleware.UserID(c), c.Query("search"), middleware.GetLanguage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": views})
}

func (h *Handler) HandleExpiringIngredients(c *gin.Context) {
	views, err := h.ingredients.Expiring(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if views == nil {
		views = []kitchenService.IngredientView{}
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": views})
}

func (h *Handler) HandleGetIngredient(c *gin.Context) {
	view, err := h.ingredients.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) HandleAddIngredient(c *gin.Context) {
	var req AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.ingredients.Add(c.Request.Context(), middleware.UserID(c), kitchenService.IngredientInput{
		Name:       req.Name,
		NameEN:     req.NameEN,
		NameID:     req.NameID,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: expiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) HandleUpdateIngredient(c *gin.Context) {
	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	update := kitchenService.IngredientUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	}
	// an explicit empty expiry_date clears it
	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		update.ExpiryDate = expiry
		update.ClearExpiry = expiry == nil
	}

	view, err := h.ingredients.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), update)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) HandleDeleteIngredient(c *gin.Context) {
	if err := h.ingredients.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
