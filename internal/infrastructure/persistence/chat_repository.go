package persistence

import (
	"context"

	"kitchen-assistant/internal/pkg/common"

	"gorm.io/gorm"
)

// ChatRepository stores the flat chat transcript
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// List returns all of the user's messages, oldest first
func (r *ChatRepository) List(ctx context.Context, userID string) ([]ChatMessage, error) {
	var rows []ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, common.ErrPersistence.Wrap(err)
	}
	return rows, nil
}

// LatestSessionID returns the session of the user's newest message, or "" if there are none
func (r *ChatRepository) LatestSessionID(ctx context.Context, userID string) (string, error) {
	var rows []ChatMessage
	err := r.db.WithContext(ctx).
		Select("session_id").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", common.ErrPersistence.Wrap(err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].SessionID, nil
}

func (r *ChatRepository) Create(ctx context.Context, row *ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return common.ErrPersistence.Wrap(err)
	}
	return nil
}

// DeleteAll removes every message the user owns and reports how many were removed
func (r *ChatRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&ChatMessage{})
	if res.Error != nil {
		return 0, common.ErrPersistence.Wrap(res.Error)
	}
	return res.RowsAffected, nil
}
