package kitchen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/pkg/common"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() { _ = persistence.Close(db) })
	return db
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// fakeGenerator records calls and returns canned results
type fakeGenerator struct {
	recipe      *common.GeneratedRecipe
	recipeErr   error
	answer      string
	answerErr   error
	lastRecipe  *common.RecipeRequest
	lastAnswer  string
	lastLang    common.Language
	recipeCalls int
	answerCalls int
}

func (f *fakeGenerator) GenerateRecipe(_ context.Context, req common.RecipeRequest) (*common.GeneratedRecipe, error) {
	f.recipeCalls++
	f.lastRecipe = &req
	f.lastLang = req.Language
	return f.recipe, f.recipeErr
}

func (f *fakeGenerator) AnswerQuestion(_ context.Context, question, _ string, lang common.Language) (string, error) {
	f.answerCalls++
	f.lastAnswer = question
	f.lastLang = lang
	return f.answer, f.answerErr
}
