package kitchen

import (
	"net/http"
	"strings"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"
	"kitchen-assistant/internal/core/translation"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// TranslationResponse previews how a name, unit and category render in both languages
type TranslationResponse struct {
	Name     map[common.Language]string `json:"name,omitempty"`
	Unit     map[common.Language]string `json:"unit,omitempty"`
	Category map[common.Language]string `json:"category,omitempty"`
	Language common.Language            `json:"language"`
}

func both(translate func(string, common.Language) string, value string) map[common.Language]string {
	return map[common.Language]string{
		common.English:    translate(value, common.English),
		common.Indonesian: translate(value, common.Indonesian),
	}
}

// HandleTranslate serves GET /translations?name=&unit=&category=
func HandleTranslate(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	unit := strings.TrimSpace(c.Query("unit"))
	category := strings.TrimSpace(c.Query("category"))
	if name == "" && unit == "" && category == "" {
		response.Error(c, common.NewValidationError("one of name, unit or category is required"))
		return
	}

	resp := TranslationResponse{Language: middleware.GetLanguage(c)}
	if name != "" {
		resp.Name = both(translation.Translate, name)
	}
	if unit != "" {
		resp.Unit = both(translation.TranslateUnit, unit)
	}
	if category != "" {
		resp.Category = both(translation.TranslateCategory, category)
	}
	c.JSON(http.StatusOK, resp)
}
