package repository

import (
	"context"

	"gorm.io/gorm"

	"miniter/internal/model"
)

// TweetRepository defines tweet persistence operations.
type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	Timeline(ctx context.Context, userID uint) ([]model.TimelineEntry, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository builds a GORM-backed repository.
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

// Timeline returns the tweets of userID and of everyone userID follows,
// in insertion order. A user with no tweets and no follows, or one that
// does not exist at all, yields an empty slice.
func (r *tweetRepository) Timeline(ctx context.Context, userID uint) ([]model.TimelineEntry, error) {
	entries := make([]model.TimelineEntry, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.user_id, t.tweet
		FROM tweets t
		WHERE t.user_id = ?
		   OR t.user_id IN (
			SELECT follow_user_id FROM users_follow_list WHERE user_id = ?
		   )
		ORDER BY t.id`, userID, userID).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
