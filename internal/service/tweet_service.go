package service

import (
	"context"
	"unicode/utf8"

	apperrors "miniter/internal/errors"
	"miniter/internal/model"
	"miniter/internal/repository"
)

// MaxTweetLength is the maximum tweet length in characters.
const MaxTweetLength = 300

// TweetService handles posting tweets and computing timelines.
type TweetService interface {
	Post(ctx context.Context, userID uint, text string) error
	Timeline(ctx context.Context, userID uint) ([]model.TimelineEntry, error)
}

type tweetService struct {
	tweetRepo repository.TweetRepository
}

// NewTweetService creates a new tweet service.
func NewTweetService(tweetRepo repository.TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

// Post stores a tweet for userID. Length is counted in runes, matching
// the 300-character limit rather than a byte limit.
func (s *tweetService) Post(ctx context.Context, userID uint, text string) error {
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return apperrors.ErrTweetEmpty
	}
	if length > MaxTweetLength {
		return apperrors.ErrTweetTooLong
	}

	return s.tweetRepo.Create(ctx, &model.Tweet{UserID: userID, Tweet: text})
}

// Timeline returns the union of userID's own tweets and those of every
// followed user, in insertion order.
func (s *tweetService) Timeline(ctx context.Context, userID uint) ([]model.TimelineEntry, error) {
	return s.tweetRepo.Timeline(ctx, userID)
}
