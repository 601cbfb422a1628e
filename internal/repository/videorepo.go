package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/model"
)

// VideoRepository stores videos and serves discovery listings.
type VideoRepository interface {
	discovery.Source[model.Video]

	// Create inserts a video.
	Create(ctx context.Context, v *model.Video) error
	// Get loads a video by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Video, error)
	// Update overwrites the mutable fields of v (title, description, thumbnail).
	Update(ctx context.Context, v *model.Video) error
	// Delete removes a video by ID.
	Delete(ctx context.Context, id uuid.UUID) error
	// TogglePublished flips is_published in one statement and returns the new row.
	TogglePublished(ctx context.Context, id uuid.UUID) (*model.Video, error)
	// ListLikedBy returns videos liked by userID, most recent like first.
	ListLikedBy(ctx context.Context, userID uuid.UUID) ([]model.Video, error)
}
