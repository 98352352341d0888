package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miniter/internal/model"
)

// FollowRepository defines follow-edge persistence operations.
type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, userID, followUserID uint) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository builds a GORM-backed repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge. Inserting an edge that already exists is
// a no-op, keeping follow idempotent.
func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

// Delete removes a follow edge. Deleting a missing edge is a no-op.
func (r *followRepository) Delete(ctx context.Context, userID, followUserID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND follow_user_id = ?", userID, followUserID).
		Delete(&model.Follow{}).Error
}
