package service

import (
	"context"

	apperrors "miniter/internal/errors"
	"miniter/internal/model"
	"miniter/internal/repository"
)

// FollowService manages follow edges between users.
type FollowService interface {
	Follow(ctx context.Context, userID, targetID uint) error
	Unfollow(ctx context.Context, userID, targetID uint) error
}

type followService struct {
	followRepo repository.FollowRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository) FollowService {
	return &followService{followRepo: followRepo}
}

// Follow adds an edge from userID to targetID. Following a user twice is
// a no-op; following yourself is rejected.
func (s *followService) Follow(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return apperrors.ErrSelfFollow
	}
	return s.followRepo.Create(ctx, &model.Follow{UserID: userID, FollowUserID: targetID})
}

// Unfollow removes the edge from userID to targetID. Removing an edge
// that does not exist is a no-op, not an error.
func (s *followService) Unfollow(ctx context.Context, userID, targetID uint) error {
	return s.followRepo.Delete(ctx, userID, targetID)
}
