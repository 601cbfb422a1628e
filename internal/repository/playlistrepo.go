package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// PlaylistRepository stores playlists and their ordered video membership.
type PlaylistRepository interface {
	Create(ctx context.Context, p *model.Playlist) error
	// Get loads a playlist with its videos in insertion order.
	Get(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	// ListByOwner returns the owner's playlists without video membership.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Playlist, error)
	// Update overwrites name and description.
	Update(ctx context.Context, id uuid.UUID, name, description string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AppendVideo adds videoID at the end of the sequence.
	AppendVideo(ctx context.Context, id, videoID uuid.UUID) error
	// RemoveVideo drops every occurrence of videoID.
	RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error
}
