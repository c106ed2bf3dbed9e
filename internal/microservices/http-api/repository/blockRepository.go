package repository

import (
	"context"
	"fmt"

	"litreview/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepository interface {
	GetOrCreate(ctx context.Context, blockerID, blockedID string) (created bool, err error)
	Delete(ctx context.Context, blockerID, blockedID string) error
	BlockedIDs(ctx context.Context, userID string) ([]string, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) GetOrCreate(ctx context.Context, blockerID, blockedID string) (bool, error) {
	block := &models.UserBlock{UserID: blockerID, BlockedUserID: blockedID}
	result := r.db.WithContext(ctx).
		Omit("User", "BlockedUser").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(block)
	if result.Error != nil {
		return false, fmt.Errorf("create block: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Delete removes the edge if present; a missing edge is not an error
func (r *blockRepository) Delete(ctx context.Context, blockerID, blockedID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND blocked_user_id = ?", blockerID, blockedID).
		Delete(&models.UserBlock{}).Error
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

func (r *blockRepository) BlockedIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.UserBlock{}).
		Where("user_id = ?", userID).
		Pluck("blocked_user_id", &ids).Error
	return ids, err
}
