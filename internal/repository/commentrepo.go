package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/model"
)

// CommentRepository stores comments and serves per-video listings.
type CommentRepository interface {
	discovery.Source[model.Comment]

	Create(ctx context.Context, c *model.Comment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
