package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchen-assistant/internal/api/middleware"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	err      error
	lastReq  common.RecipeRequest
	lastLang common.Language
}

func (s *stubGenerator) GenerateRecipe(_ context.Context, req common.RecipeRequest) (*common.GeneratedRecipe, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	return &common.GeneratedRecipe{Title: "Omelette", Servings: 1}, nil
}

func (s *stubGenerator) AnswerQuestion(_ context.Context, question, _ string, lang common.Language) (string, error) {
	s.lastLang = lang
	return "answer to " + question, s.err
}

func (s *stubGenerator) GetTips(_ context.Context, _ string, lang common.Language) ([]string, error) {
	s.lastLang = lang
	return []string{"tip one", "tip two"}, s.err
}

func (s *stubGenerator) SuggestSubstitutions(_ context.Context, _ string, lang common.Language) ([]string, error) {
	s.lastLang = lang
	return []string{"tofu"}, s.err
}

func newRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Language())
	NewHandler(gen).Register(r.Group("/ai"))
	return r
}

func post(r http.Handler, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDetectLanguage(t *testing.T) {
	r := newRouter(&stubGenerator{})

	w := post(r, "/ai/detect-language", `{"text":"Bagaimana cara memasak nasi goreng yang enak?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp DetectLanguageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.Indonesian, resp.Language)
	assert.Greater(t, resp.Score, 15.0)

	w = post(r, "/ai/detect-language", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRecipe(t *testing.T) {
	gen := &stubGenerator{}
	r := newRouter(gen)

	w := post(r, "/ai/recipes", `{"ingredients":["egg"]}`, "Accept-Language", "id-ID")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Omelette")
	assert.Equal(t, common.Indonesian, gen.lastReq.Language)

	w = post(r, "/ai/recipes", `{"ingredients":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidRequest)
}

func TestGenerateRecipeUpstreamError(t *testing.T) {
	r := newRouter(&stubGenerator{err: common.ErrRateLimited})

	w := post(r, "/ai/recipes", `{"ingredients":["egg"]}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrCodeRateLimited, resp.Code)
	assert.Equal(t, common.Localize(common.ErrCodeRateLimited, common.English), resp.Message)
}

func TestQuestionDetectsLanguage(t *testing.T) {
	gen := &stubGenerator{}
	r := newRouter(gen)

	w := post(r, "/ai/questions", `{"question":"Apa bumbu untuk rendang dan bagaimana cara membuatnya?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.Indonesian, gen.lastLang)

	w = post(r, "/ai/questions", `{"question":"Apa bumbu untuk rendang?","language":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.English, gen.lastLang)

	w = post(r, "/ai/questions", `{"question":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTipsAndSubstitutions(t *testing.T) {
	gen := &stubGenerator{}
	r := newRouter(gen)

	w := post(r, "/ai/tips", `{"recipe":"Fried rice with egg"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var list ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"tip one", "tip two"}, list.Items)
	assert.Equal(t, common.English, list.Language)

	w = post(r, "/ai/substitutions", `{"ingredient":"butter"}`, "Accept-Language", "id")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.Indonesian, gen.lastLang)

	w = post(r, "/ai/substitutions", `{"ingredient":"butter"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.English, gen.lastLang)
}
