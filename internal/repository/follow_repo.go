package repository

import (
	"context"
	"time"

	"sabor/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Add inserts the edge. Returns (false, nil) when it already existed, so
// following twice stays a no-op.
func (r *FollowRepository) Add(ctx context.Context, followerID, followeeID int64) (bool, error) {
	rel := &domain.Follow{
		ID:         uuid.New().String(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	err := r.db.WithContext(ctx).Create(rel).Error
	if err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FollowRepository) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&domain.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FollowRepository) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at").
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (r *FollowRepository) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Follow{}).
		Where("followee_id = ?", userID).
		Order("created_at").
		Pluck("follower_id", &ids).Error
	return ids, err
}
