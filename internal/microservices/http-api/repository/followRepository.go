package repository

import (
	"context"
	"fmt"

	"litreview/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	// GetOrCreate inserts the edge unless it exists. created is false when
	// the edge was already there, including when a concurrent request won.
	GetOrCreate(ctx context.Context, followerID, followedID string) (edge *models.UserFollows, created bool, err error)
	GetByID(ctx context.Context, edgeID int64) (*models.UserFollows, error)
	Delete(ctx context.Context, edgeID int64) error
	ListFollowing(ctx context.Context, userID string) ([]models.UserFollows, error)
	ListFollowers(ctx context.Context, userID string) ([]models.UserFollows, error)
	FollowedIDs(ctx context.Context, userID string) ([]string, error)
	FollowerIDs(ctx context.Context, userID string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) GetOrCreate(ctx context.Context, followerID, followedID string) (*models.UserFollows, bool, error) {
	edge := &models.UserFollows{UserID: followerID, FollowedUserID: followedID}

	// ON CONFLICT DO NOTHING leaves the unique index as the only arbiter
	result := r.db.WithContext(ctx).
		Omit("User", "FollowedUser").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge)
	if result.Error != nil {
		return nil, false, fmt.Errorf("create follow: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return edge, true, nil
	}

	var existing models.UserFollows
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND followed_user_id = ?", followerID, followedID).
		First(&existing).Error
	if err != nil {
		return nil, false, fmt.Errorf("load follow: %w", err)
	}
	return &existing, false, nil
}

func (r *followRepository) GetByID(ctx context.Context, edgeID int64) (*models.UserFollows, error) {
	var edge models.UserFollows
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("FollowedUser").
		First(&edge, edgeID).Error
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (r *followRepository) Delete(ctx context.Context, edgeID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UserFollows{}, edgeID)
	if result.Error != nil {
		return fmt.Errorf("delete follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFollowing retrieves the edges created by userID
func (r *followRepository) ListFollowing(ctx context.Context, userID string) ([]models.UserFollows, error) {
	var edges []models.UserFollows
	err := r.db.WithContext(ctx).
		Preload("FollowedUser").
		Where("user_id = ?", userID).
		Order("id").
		Find(&edges).Error
	return edges, err
}

// ListFollowers retrieves the edges pointing at userID
func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]models.UserFollows, error) {
	var edges []models.UserFollows
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("followed_user_id = ?", userID).
		Order("id").
		Find(&edges).Error
	return edges, err
}

func (r *followRepository) FollowedIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.UserFollows{}).
		Where("user_id = ?", userID).
		Pluck("followed_user_id", &ids).Error
	return ids, err
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.UserFollows{}).
		Where("followed_user_id = ?", userID).
		Pluck("user_id", &ids).Error
	return ids, err
}
