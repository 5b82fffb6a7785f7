// Package assistant exposes the generation client over HTTP.
package assistant

import (
	"context"
	"net/http"
	"strings"

	"kitchen-assistant/internal/api/handlers/response"
	"kitchen-assistant/internal/api/middleware"
	"kitchen-assistant/internal/core/ai/language"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Generator is the generation client
type Generator interface {
	GenerateRecipe(ctx context.Context, req common.RecipeRequest) (*common.GeneratedRecipe, error)
	AnswerQuestion(ctx context.Context, question, questionContext string, lang common.Language) (string, error)
	GetTips(ctx context.Context, recipe string, lang common.Language) ([]string, error)
	SuggestSubstitutions(ctx context.Context, ingredient string, lang common.Language) ([]string, error)
}

type DetectLanguageRequest struct {
	Text string `json:"text" binding:"required"`
}

type DetectLanguageResponse struct {
	Language common.Language `json:"language"`
	Score    float64         `json:"score"`
}

type QuestionRequest struct {
	Question string          `json:"question" binding:"required"`
	Context  string          `json:"context,omitempty"`
	Language common.Language `json:"language,omitempty"`
}

type QuestionResponse struct {
	Answer   string          `json:"answer"`
	Language common.Language `json:"language"`
}

type TipsRequest struct {
	Recipe   string          `json:"recipe" binding:"required"`
	Language common.Language `json:"language,omitempty"`
}

type SubstitutionsRequest struct {
	Ingredient string          `json:"ingredient" binding:"required"`
	Language   common.Language `json:"language,omitempty"`
}

type ListResponse struct {
	Items    []string        `json:"items"`
	Language common.Language `json:"language"`
}

// Handler serves /api/v1/ai
type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// Register mounts the routes on rg
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/detect-language", h.HandleDetectLanguage)
	rg.POST("/recipes", h.HandleGenerateRecipe)
	rg.POST("/questions", h.HandleQuestion)
	rg.POST("/tips", h.HandleTips)
	rg.POST("/substitutions", h.HandleSubstitutions)
}

// resolveLanguage uses the explicit language, else detects it from text
func resolveLanguage(explicit common.Language, text string) common.Language {
	if explicit != "" {
		return common.ParseLanguage(string(explicit))
	}
	return language.Detect(text)
}

func (h *Handler) HandleDetectLanguage(c *gin.Context) {
	var req DetectLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, DetectLanguageResponse{
		Language: language.Detect(req.Text),
		Score:    language.Score(req.Text),
	})
}

func (h *Handler) HandleGenerateRecipe(c *gin.Context) {
	var req common.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if req.Language == "" {
		req.Language = middleware.GetLanguage(c)
	}

	common.LogInfo("generating recipe",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.String("language", string(req.Language)),
	)

	recipe, err := h.generator.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) HandleQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		response.Error(c, common.NewValidationError("question is required"))
		return
	}
	lang := resolveLanguage(req.Language, question)

	answer, err := h.generator.AnswerQuestion(c.Request.Context(), question, req.Context, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, QuestionResponse{Answer: answer, Language: lang})
}

func (h *Handler) HandleTips(c *gin.Context) {
	var req TipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	lang := resolveLanguage(req.Language, req.Recipe)

	tips, err := h.generator.GetTips(c.Request.Context(), req.Recipe, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: tips, Language: lang})
}

func (h *Handler) HandleSubstitutions(c *gin.Context) {
	var req SubstitutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	lang := req.Language
	if lang == "" {
		lang = middleware.GetLanguage(c)
	}
	lang = common.ParseLanguage(string(lang))

	items, err := h.generator.SuggestSubstitutions(c.Request.Context(), req.Ingredient, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: items, Language: lang})
}
