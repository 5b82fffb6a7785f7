package persistence

import (
	"context"

	"kitchen-assistant/internal/pkg/common"

	"gorm.io/gorm"
)

// RecipeRepository reads and writes one user's saved recipes
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// List returns the user's recipes, newest first
func (r *RecipeRepository) List(ctx context.Context, userID string) ([]Recipe, error) {
	var rows []Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, common.ErrPersistence.Wrap(err)
	}
	return rows, nil
}

// Recent returns at most limit of the newest recipes
func (r *RecipeRepository) Recent(ctx context.Context, userID string, limit int) ([]Recipe, error) {
	var rows []Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, common.ErrPersistence.Wrap(err)
	}
	return rows, nil
}

func (r *RecipeRepository) Get(ctx context.Context, userID, id string) (*Recipe, error) {
	var row Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (r *RecipeRepository) Create(ctx context.Context, row *Recipe) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return common.ErrPersistence.Wrap(err)
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&Recipe{})
	if res.Error != nil {
		return common.ErrPersistence.Wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Recipe{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, common.ErrPersistence.Wrap(err)
	}
	return n, nil
}
