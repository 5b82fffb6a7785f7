package kitchen

import (
	"net/http"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleDashboard(c *gin.Context) {
	d, err := h.dashboard.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
