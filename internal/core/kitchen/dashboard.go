package kitchen

import (
	"context"

	"kitchen-assistant/internal/infrastructure/persistence"
)

const recentRecipeLimit = 4

// Dashboard summarizes a user's kitchen
type Dashboard struct {
	IngredientCount     int                  `json:"ingredient_count"`
	RecipeCount         int64                `json:"recipe_count"`
	ExpiringCount       int                  `json:"expiring_count"`
	ExpiringIngredients []IngredientView     `json:"expiring_ingredients"`
	RecentRecipes       []persistence.Recipe `json:"recent_recipes"`
	LowStock            []IngredientView     `json:"low_stock"`
}

// DashboardService builds the overview from the pantry and recipe stores
type DashboardService struct {
	ingredients *IngredientService
	recipes     RecipeStore
}

func NewDashboardService(ingredients *IngredientService, recipes RecipeStore) *DashboardService {
	return &DashboardService{ingredients: ingredients, recipes: recipes}
}

func (s *DashboardService) Get(ctx context.Context, userID string) (*Dashboard, error) {
	pantry, err := s.ingredients.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipeCount, err := s.recipes.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.recipes.Recent(ctx, userID, recentRecipeLimit)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		IngredientCount:     len(pantry),
		RecipeCount:         recipeCount,
		ExpiringIngredients: []IngredientView{},
		RecentRecipes:       recent,
		LowStock:            []IngredientView{},
	}
	if d.RecentRecipes == nil {
		d.RecentRecipes = []persistence.Recipe{}
	}

	now := s.ingredients.now()
	for _, row := range pantry {
		v := s.ingredients.view(row, now)
		if v.ExpiryStatus == ExpiryExpiring {
			d.ExpiringIngredients = append(d.ExpiringIngredients, v)
		}
		if v.LowStock {
			d.LowStock = append(d.LowStock, v)
		}
	}
	d.ExpiringCount = len(d.ExpiringIngredients)
	return d, nil
}
