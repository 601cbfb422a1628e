package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/access"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// TweetService manages short text posts.
type TweetService interface {
	Create(ctx context.Context, actor uuid.UUID, text string) (*model.Tweet, error)
	ListByUser(ctx context.Context, userRef string) ([]model.Tweet, error)
	Update(ctx context.Context, actor uuid.UUID, tweetRef, text string) (*model.Tweet, error)
	Delete(ctx context.Context, actor uuid.UUID, tweetRef string) error
}

type TweetServiceImpl struct {
	tweets repository.TweetRepository
	users  repository.UserRepository
}

// NewTweetService constructs TweetService.
func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) *TweetServiceImpl {
	return &TweetServiceImpl{tweets: tweets, users: users}
}

func (s *TweetServiceImpl) Create(ctx context.Context, actor uuid.UUID, text string) (*model.Tweet, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	body, err := requireText("content", text)
	if err != nil {
		return nil, err
	}
	ok, err := s.users.Exists(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("user", actor)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	t := &model.Tweet{ID: id, AuthorID: actor, Text: body}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TweetServiceImpl) ListByUser(ctx context.Context, userRef string) ([]model.Tweet, error) {
	userID, err := ident.Parse("userId", userRef)
	if err != nil {
		return nil, err
	}
	return s.tweets.ListByAuthor(ctx, userID)
}

func (s *TweetServiceImpl) Update(ctx context.Context, actor uuid.UUID, tweetRef, text string) (*model.Tweet, error) {
	t, err := s.owned(ctx, actor, tweetRef)
	if err != nil {
		return nil, err
	}
	body, err := requireText("content", text)
	if err != nil {
		return nil, err
	}
	return s.tweets.UpdateText(ctx, t.ID, body)
}

func (s *TweetServiceImpl) Delete(ctx context.Context, actor uuid.UUID, tweetRef string) error {
	t, err := s.owned(ctx, actor, tweetRef)
	if err != nil {
		return err
	}
	return s.tweets.Delete(ctx, t.ID)
}

func (s *TweetServiceImpl) owned(ctx context.Context, actor uuid.UUID, tweetRef string) (*model.Tweet, error) {
	id, err := ident.Parse("tweetId", tweetRef)
	if err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	t, err := s.tweets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, t.AuthorID); err != nil {
		return nil, err
	}
	return t, nil
}
