package persistence

import (
	"context"
	"errors"

	"kitchen-assistant/internal/pkg/common"

	"gorm.io/gorm"
)

// IngredientRepository reads and writes one user's pantry rows
type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns the user's ingredients, newest first
func (r *IngredientRepository) List(ctx context.Context, userID string) ([]Ingredient, error) {
	var rows []Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, common.ErrPersistence.Wrap(err)
	}
	return rows, nil
}

// Get returns a single ingredient owned by the user
func (r *IngredientRepository) Get(ctx context.Context, userID, id string) (*Ingredient, error) {
	var row Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (r *IngredientRepository) Create(ctx context.Context, row *Ingredient) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return common.ErrPersistence.Wrap(err)
	}
	return nil
}

// Save writes every column of an existing row
func (r *IngredientRepository) Save(ctx context.Context, row *Ingredient) error {
	res := r.db.WithContext(ctx).
		Model(&Ingredient{}).
		Where("user_id = ? AND id = ?", row.UserID, row.ID).
		Select("name", "name_en", "name_id", "quantity", "unit", "category", "expiry_date", "updated_at").
		Updates(row)
	if res.Error != nil {
		return common.ErrPersistence.Wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *IngredientRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&Ingredient{})
	if res.Error != nil {
		return common.ErrPersistence.Wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Count returns how many ingredients the user has
func (r *IngredientRepository) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Ingredient{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, common.ErrPersistence.Wrap(err)
	}
	return n, nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return common.ErrPersistence.Wrap(err)
}
