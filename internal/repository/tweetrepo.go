package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// TweetRepository stores tweets.
type TweetRepository interface {
	Create(ctx context.Context, t *model.Tweet) error
	Get(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	// ListByAuthor returns the author's tweets, newest first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Tweet, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*model.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
