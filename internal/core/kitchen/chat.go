package kitchen

import (
	"context"
	"strings"
	"time"

	"kitchen-assistant/internal/core/ai/language"
	"kitchen-assistant/internal/core/ai/prompt"
	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/pkg/common"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// pantryIngredientLimit caps how many pantry items feed a recipe when none are selected
const pantryIngredientLimit = 8

// Generator produces recipes and answers
type Generator interface {
	GenerateRecipe(ctx context.Context, req common.RecipeRequest) (*common.GeneratedRecipe, error)
	AnswerQuestion(ctx context.Context, question, questionContext string, lang common.Language) (string, error)
}

// SendInput is one user turn
type SendInput struct {
	Text                string          `json:"text"`
	SelectedIngredients []string        `json:"selected_ingredients"`
	Language            common.Language `json:"language"`
}

// SendResult is what a turn appended to the transcript
type SendResult struct {
	UserMessage      *persistence.ChatMessage `json:"user_message,omitempty"`
	Reply            *persistence.ChatMessage `json:"reply,omitempty"`
	DetectedLanguage common.Language          `json:"detected_language"`
	Recipe           *common.GeneratedRecipe  `json:"recipe,omitempty"`
}

// History is the transcript plus the active session
type History struct {
	Messages        []persistence.ChatMessage `json:"messages"`
	ActiveSessionID string                    `json:"active_session_id,omitempty"`
}

// ChatService runs the assistant conversation
type ChatService struct {
	messages    ChatStore
	ingredients IngredientStore
	generator   Generator
	sessions    SessionStore
	metrics     *monitoring.Metrics
	now         func() time.Time
}

func NewChatService(messages ChatStore, ingredients IngredientStore, generator Generator, sessions SessionStore, metrics *monitoring.Metrics) *ChatService {
	return &ChatService{
		messages:    messages,
		ingredients: ingredients,
		generator:   generator,
		sessions:    sessions,
		metrics:     metrics,
		now:         time.Now,
	}
}

// lastSession is the last distinct session id in transcript order
func lastSession(rows []persistence.ChatMessage) string {
	seen := make(map[string]bool, len(rows))
	last := ""
	for _, row := range rows {
		if !seen[row.SessionID] {
			seen[row.SessionID] = true
			last = row.SessionID
		}
	}
	return last
}

// History returns the user's messages oldest first. When no session state is
// recorded yet, the most recent session of the transcript becomes active.
func (s *ChatService) History(ctx context.Context, userID string) (*History, error) {
	rows, err := s.messages.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, known, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !known {
		active = lastSession(rows)
		if err := s.sessions.Set(ctx, userID, active); err != nil {
			return nil, err
		}
	}
	return &History{Messages: rows, ActiveSessionID: active}, nil
}

func (s *ChatService) activeSession(ctx context.Context, userID string) (string, error) {
	active, known, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if !known {
		if active, err = s.messages.LatestSessionID(ctx, userID); err != nil {
			return "", err
		}
	}
	if active != "" {
		if !known {
			return active, s.sessions.Set(ctx, userID, active)
		}
		return active, nil
	}

	active = ulid.Make().String()
	if err := s.sessions.Set(ctx, userID, active); err != nil {
		return "", err
	}
	common.LogDebug("chat session started", zap.String("user_id", userID), zap.String("session_id", active))
	return active, nil
}

// Append adds a message to the active session, starting one if needed
func (s *ChatService) Append(ctx context.Context, userID string, messageType common.ChatMessageType, content string, metadata map[string]interface{}) (*persistence.ChatMessage, error) {
	if !messageType.Valid() {
		return nil, common.NewValidationError("message type must be user, ai, recipe or system")
	}
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("message content is required")
	}
	return s.append(ctx, userID, messageType, content, metadata, 0)
}

func (s *ChatService) append(ctx context.Context, userID string, messageType common.ChatMessageType, content string, metadata map[string]interface{}, elapsed time.Duration) (*persistence.ChatMessage, error) {
	sessionID, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	row := &persistence.ChatMessage{
		UserID:         userID,
		SessionID:      sessionID,
		MessageType:    string(messageType),
		Content:        content,
		ResponseTimeMS: elapsed.Milliseconds(),
	}
	if metadata != nil {
		row.Metadata = datatypes.JSONMap(metadata)
	}
	if err := s.messages.Create(ctx, row); err != nil {
		common.LogError("failed to append chat message", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	s.metrics.ChatMessage(string(messageType))
	return row, nil
}

// StartNewSession drops the active session; the next message starts a fresh one
func (s *ChatService) StartNewSession(ctx context.Context, userID string) error {
	return s.sessions.Set(ctx, userID, "")
}

// Clear deletes the user's whole transcript and drops the active session
func (s *ChatService) Clear(ctx context.Context, userID string) (int64, error) {
	n, err := s.messages.DeleteAll(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.sessions.Set(ctx, userID, ""); err != nil {
		return 0, err
	}
	common.LogInfo("chat history cleared", zap.String("user_id", userID), zap.Int64("deleted", n))
	return n, nil
}

// Send runs one assistant turn. On failure an apology is appended to the
// transcript and the categorized error is returned together with the result.
func (s *ChatService) Send(ctx context.Context, userID string, in SendInput) (*SendResult, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, common.NewValidationError("message text is required")
	}
	uiLang := common.ParseLanguage(string(in.Language))
	selected := common.UniqueStrings(in.SelectedIngredients)
	if selected == nil {
		selected = []string{}
	}

	detected := language.Detect(text)
	result := &SendResult{DetectedLanguage: detected}

	userMsg, err := s.append(ctx, userID, common.MessageUser, text, map[string]interface{}{
		"selectedIngredients": selected,
		"detectedLanguage":    string(detected),
	}, 0)
	if err != nil {
		return s.fail(ctx, userID, result, err, uiLang)
	}
	result.UserMessage = userMsg

	ingredients := selected
	wantsRecipe := prompt.IsRecipeRequest(text) || len(selected) > 0
	if wantsRecipe && len(selected) == 0 {
		pantry, err := s.ingredients.List(ctx, userID)
		if err != nil {
			return s.fail(ctx, userID, result, err, uiLang)
		}
		for i, row := range pantry {
			if i == pantryIngredientLimit {
				break
			}
			ingredients = append(ingredients, row.Name)
		}
	}

	if wantsRecipe && len(ingredients) > 0 {
		return s.sendRecipe(ctx, userID, text, ingredients, detected, result)
	}

	start := s.now()
	answer, err := s.generator.AnswerQuestion(ctx, text, "", detected)
	if err != nil {
		return s.fail(ctx, userID, result, err, uiLang)
	}
	reply, err := s.append(ctx, userID, common.MessageAI, answer, nil, s.now().Sub(start))
	if err != nil {
		return s.fail(ctx, userID, result, err, uiLang)
	}
	result.Reply = reply
	return result, nil
}

func (s *ChatService) sendRecipe(ctx context.Context, userID, text string, ingredients []string, detected common.Language, result *SendResult) (*SendResult, error) {
	req := common.RecipeRequest{
		Ingredients: ingredients,
		Preferences: prompt.ExtractPreferences(text),
		Mood:        text,
		Language:    detected,
	}

	start := s.now()
	recipe, err := s.generator.GenerateRecipe(ctx, req)
	if err != nil {
		common.LogWarn("chat recipe generation failed", zap.String("user_id", userID), zap.Error(err))
		reply, appendErr := s.append(ctx, userID, common.MessageAI, common.RecipeApology(detected), map[string]interface{}{"error": true}, 0)
		if appendErr != nil {
			common.LogError("failed to append recipe apology", zap.String("user_id", userID), zap.Error(appendErr))
		}
		result.Reply = reply
		return result, err
	}

	reply, err := s.append(ctx, userID, common.MessageRecipe, common.RecipeCreated(detected), map[string]interface{}{
		"recipe":   recipe,
		"language": string(detected),
	}, s.now().Sub(start))
	if err != nil {
		return s.fail(ctx, userID, result, err, detected)
	}
	result.Reply = reply
	result.Recipe = recipe
	return result, nil
}

func (s *ChatService) fail(ctx context.Context, userID string, result *SendResult, err error, lang common.Language) (*SendResult, error) {
	common.LogError("chat turn failed", zap.String("user_id", userID), zap.Error(err))
	reply, appendErr := s.append(ctx, userID, common.MessageAI, common.Apology(common.LocalizeError(err, lang), lang), map[string]interface{}{"error": true}, 0)
	if appendErr != nil {
		common.LogError("failed to append apology", zap.String("user_id", userID), zap.Error(appendErr))
	}
	result.Reply = reply
	return result, err
}
