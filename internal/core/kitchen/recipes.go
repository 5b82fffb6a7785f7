package kitchen

import (
	"context"
	"sort"
	"strings"

	"kitchen-assistant/internal/infrastructure/monitoring"
	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Recipe sort orders
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// RecipeFilter narrows the saved recipe list. Empty sets match everything.
type RecipeFilter struct {
	Search       string
	Difficulties []string
	Cuisines     []string
	Sort         string
}

// RecipeService manages a user's saved recipes
type RecipeService struct {
	store   RecipeStore
	metrics *monitoring.Metrics
}

func NewRecipeService(store RecipeStore, metrics *monitoring.Metrics) *RecipeService {
	return &RecipeService{store: store, metrics: metrics}
}

// Save promotes a generated recipe to a stored one
func (s *RecipeService) Save(ctx context.Context, userID string, recipe common.GeneratedRecipe) (*persistence.Recipe, error) {
	title := strings.TrimSpace(recipe.Title)
	if title == "" {
		return nil, common.NewValidationError("recipe title is required")
	}
	difficulty, err := common.ParseDifficulty(recipe.Difficulty)
	if err != nil {
		return nil, err
	}
	if recipe.Servings <= 0 || recipe.PrepTime < 0 || recipe.CookTime < 0 {
		return nil, common.NewValidationError("recipe times must be zero or more and servings positive")
	}

	row := &persistence.Recipe{
		UserID:       userID,
		Title:        title,
		Description:  recipe.Description,
		Ingredients:  nonNil(recipe.Ingredients),
		Instructions: nonNil(recipe.Instructions),
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		Difficulty:   string(difficulty),
		Cuisine:      recipe.Cuisine,
		Tags:         nonNil(recipe.Tags),
	}
	if err := s.store.Create(ctx, row); err != nil {
		common.LogError("failed to save recipe", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	s.metrics.RecipeSaved()
	common.LogInfo("recipe saved", zap.String("user_id", userID), zap.String("id", row.ID), zap.String("title", row.Title))
	return row, nil
}

// List returns the saved recipes matching filter
func (s *RecipeService) List(ctx context.Context, userID string, filter RecipeFilter) ([]persistence.Recipe, error) {
	order := strings.ToLower(strings.TrimSpace(filter.Sort))
	switch order {
	case "", SortNewest, SortPopular:
		order = SortNewest
	case SortOldest:
	default:
		return nil, common.NewValidationError("sort must be newest, oldest or popular")
	}

	rows, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	search := strings.TrimSpace(filter.Search)
	difficulties := toSet(filter.Difficulties)
	cuisines := toSet(filter.Cuisines)

	out := make([]persistence.Recipe, 0, len(rows))
	for _, row := range rows {
		if search != "" && !common.ContainsFold(row.Title, search) && !common.ContainsFold(row.Description, search) {
			continue
		}
		if len(difficulties) > 0 && !difficulties[row.Difficulty] {
			continue
		}
		if len(cuisines) > 0 && !cuisines[row.Cuisine] {
			continue
		}
		out = append(out, row)
	}

	// rows arrive newest first
	if order == SortOldest {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (s *RecipeService) Get(ctx context.Context, userID, id string) (*persistence.Recipe, error) {
	return s.store.Get(ctx, userID, id)
}

func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	common.LogInfo("recipe deleted", zap.String("user_id", userID), zap.String("id", id))
	return nil
}

// ToGenerated converts a stored recipe back into the generated shape with empty tips and story
func ToGenerated(r persistence.Recipe) common.GeneratedRecipe {
	return common.GeneratedRecipe{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  nonNil(r.Ingredients),
		Instructions: nonNil(r.Instructions),
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		Cuisine:      r.Cuisine,
		Tags:         nonNil(r.Tags),
		Tips:         []string{},
		Story:        "",
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range common.UniqueStrings(values) {
		set[v] = true
	}
	return set
}
