package kitchen

import (
	"context"
	"testing"

	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ChatServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	messages    *persistence.ChatRepository
	ingredients *persistence.IngredientRepository
	sessions    *MemorySessionStore
	generator   *fakeGenerator
	svc         *ChatService
}

func (s *ChatServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	s.ctx = context.Background()
	s.messages = persistence.NewChatRepository(db)
	s.ingredients = persistence.NewIngredientRepository(db)
	s.sessions = NewMemorySessionStore()
	s.generator = &fakeGenerator{
		recipe: &common.GeneratedRecipe{Title: "Nasi Goreng", Servings: 2, Difficulty: "easy"},
		answer: "Use a hot pan.",
	}
	s.svc = NewChatService(s.messages, s.ingredients, s.generator, s.sessions, nil)
}

func (s *ChatServiceTestSuite) addPantry(names ...string) {
	for _, name := range names {
		s.Require().NoError(s.ingredients.Create(s.ctx, &persistence.Ingredient{UserID: "u1", Name: name, Quantity: 1, Unit: "pieces", Category: "other"}))
	}
}

func (s *ChatServiceTestSuite) TestAppendMintsAndReusesSession() {
	first, err := s.svc.Append(s.ctx, "u1", common.MessageUser, "hello", nil)
	s.Require().NoError(err)
	s.NotEmpty(first.SessionID)
	s.Len(first.SessionID, 26)

	second, err := s.svc.Append(s.ctx, "u1", common.MessageAI, "hi", nil)
	s.Require().NoError(err)
	s.Equal(first.SessionID, second.SessionID)

	s.Require().NoError(s.svc.StartNewSession(s.ctx, "u1"))
	third, err := s.svc.Append(s.ctx, "u1", common.MessageUser, "again", nil)
	s.Require().NoError(err)
	s.NotEqual(first.SessionID, third.SessionID)

	_, err = s.svc.Append(s.ctx, "u1", common.ChatMessageType("bot"), "x", nil)
	s.True(common.IsValidationError(err))
	_, err = s.svc.Append(s.ctx, "u1", common.MessageUser, "  ", nil)
	s.True(common.IsValidationError(err))
}

func (s *ChatServiceTestSuite) TestHistoryAdoptsLatestSession() {
	s.Require().NoError(s.messages.Create(s.ctx, &persistence.ChatMessage{UserID: "u1", SessionID: "old", MessageType: "user", Content: "a"}))
	s.Require().NoError(s.messages.Create(s.ctx, &persistence.ChatMessage{UserID: "u1", SessionID: "latest", MessageType: "ai", Content: "b"}))

	history, err := s.svc.History(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(history.Messages, 2)
	s.Equal("a", history.Messages[0].Content)
	s.Equal("latest", history.ActiveSessionID)

	msg, err := s.svc.Append(s.ctx, "u1", common.MessageUser, "c", nil)
	s.Require().NoError(err)
	s.Equal("latest", msg.SessionID)

	// an explicit new session survives later history reads
	s.Require().NoError(s.svc.StartNewSession(s.ctx, "u1"))
	history, err = s.svc.History(s.ctx, "u1")
	s.Require().NoError(err)
	s.Empty(history.ActiveSessionID)
}

func (s *ChatServiceTestSuite) TestAppendWithoutHistoryStateResumesLatest() {
	s.Require().NoError(s.messages.Create(s.ctx, &persistence.ChatMessage{UserID: "u1", SessionID: "persisted", MessageType: "user", Content: "a"}))

	msg, err := s.svc.Append(s.ctx, "u1", common.MessageUser, "b", nil)
	s.Require().NoError(err)
	s.Equal("persisted", msg.SessionID)
}

func (s *ChatServiceTestSuite) TestClear() {
	_, err := s.svc.Append(s.ctx, "u1", common.MessageUser, "hello", nil)
	s.Require().NoError(err)
	_, err = s.svc.Append(s.ctx, "u2", common.MessageUser, "other user", nil)
	s.Require().NoError(err)

	n, err := s.svc.Clear(s.ctx, "u1")
	s.Require().NoError(err)
	s.EqualValues(1, n)

	history, err := s.svc.History(s.ctx, "u1")
	s.Require().NoError(err)
	s.Empty(history.Messages)
	s.Empty(history.ActiveSessionID)

	history, err = s.svc.History(s.ctx, "u2")
	s.Require().NoError(err)
	s.Len(history.Messages, 1)
}

func (s *ChatServiceTestSuite) TestSendQuestion() {
	result, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "How long should I boil an egg?"})
	s.Require().NoError(err)
	s.Equal(common.English, result.DetectedLanguage)
	s.Equal(1, s.generator.answerCalls)
	s.Equal(0, s.generator.recipeCalls)
	s.Equal("ai", result.Reply.MessageType)
	s.Equal("Use a hot pan.", result.Reply.Content)
	s.Equal("en", result.UserMessage.Metadata["detectedLanguage"])
	s.Equal(result.UserMessage.SessionID, result.Reply.SessionID)
}

func (s *ChatServiceTestSuite) TestSendRecipeWithoutPantryAsksQuestion() {
	_, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "give me a recipe"})
	s.Require().NoError(err)
	s.Equal(0, s.generator.recipeCalls)
	s.Equal(1, s.generator.answerCalls)
}

func (s *ChatServiceTestSuite) TestSendRecipeFromPantry() {
	s.addPantry("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")

	result, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "Tolong buat resep masakan pedas dengan ayam untuk makan malam"})
	s.Require().NoError(err)
	s.Equal(common.Indonesian, result.DetectedLanguage)
	s.Require().NotNil(s.generator.lastRecipe)
	s.Len(s.generator.lastRecipe.Ingredients, 8)
	s.Equal(common.Indonesian, s.generator.lastRecipe.Language)
	s.Contains(s.generator.lastRecipe.Preferences, "spicy")
	s.Equal("recipe", result.Reply.MessageType)
	s.Equal(common.RecipeCreated(common.Indonesian), result.Reply.Content)
	s.Equal("id", result.Reply.Metadata["language"])
	s.Equal("Nasi Goreng", result.Recipe.Title)
}

func (s *ChatServiceTestSuite) TestSendSelectedIngredientsForceRecipe() {
	_, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "anything nice?", SelectedIngredients: []string{"egg", "rice", "egg"}})
	s.Require().NoError(err)
	s.Equal(1, s.generator.recipeCalls)
	s.Equal([]string{"egg", "rice"}, s.generator.lastRecipe.Ingredients)
	s.Equal("anything nice?", s.generator.lastRecipe.Mood)
}

func (s *ChatServiceTestSuite) TestSendRecipeFailureAppendsRecipeApology() {
	s.generator.recipeErr = common.ErrRateLimited
	result, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "cook something", SelectedIngredients: []string{"egg"}})
	s.ErrorIs(err, common.ErrRateLimited)
	s.Require().NotNil(result.Reply)
	s.Equal(common.RecipeApology(common.English), result.Reply.Content)
	s.Equal(true, result.Reply.Metadata["error"])
}

func (s *ChatServiceTestSuite) TestSendQuestionFailureAppendsApology() {
	s.generator.answerErr = common.ErrConnectivityFailure
	result, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "what is umami?", Language: common.Indonesian})
	s.ErrorIs(err, common.ErrConnectivityFailure)
	s.Require().NotNil(result.Reply)
	s.Equal(common.Apology(common.Localize(common.ErrCodeConnectivityFailure, common.Indonesian), common.Indonesian), result.Reply.Content)

	history, err := s.svc.History(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(history.Messages, 2)
}

func (s *ChatServiceTestSuite) TestSendRejectsEmptyText() {
	_, err := s.svc.Send(s.ctx, "u1", SendInput{Text: "   "})
	s.True(common.IsValidationError(err))
	history, err := s.svc.History(s.ctx, "u1")
	s.Require().NoError(err)
	s.Empty(history.Messages)
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func TestLastSession(t *testing.T) {
	rows := []persistence.ChatMessage{{SessionID: "a"}, {SessionID: "b"}, {SessionID: "a"}}
	assert.Equal(t, "b", lastSession(rows))
	assert.Empty(t, lastSession(nil))
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_, known, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, known)

	require.NoError(t, store.Set(ctx, "u1", ""))
	id, known, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, known)
	assert.Empty(t, id)
}
