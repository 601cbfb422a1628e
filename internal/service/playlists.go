package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/access"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// PlaylistService manages ordered video collections.
type PlaylistService interface {
	Create(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error)
	ListByUser(ctx context.Context, userRef string) ([]model.Playlist, error)
	Get(ctx context.Context, playlistRef string) (*model.Playlist, error)
	AddVideo(ctx context.Context, actor uuid.UUID, playlistRef, videoRef string) (*model.Playlist, error)
	// RemoveVideo drops every occurrence of the video from the playlist.
	RemoveVideo(ctx context.Context, actor uuid.UUID, playlistRef, videoRef string) (*model.Playlist, error)
	// Update changes name and/or description; blank values keep the stored ones.
	Update(ctx context.Context, actor uuid.UUID, playlistRef, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, actor uuid.UUID, playlistRef string) error
}

type PlaylistServiceImpl struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

// NewPlaylistService constructs PlaylistService.
func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) *PlaylistServiceImpl {
	return &PlaylistServiceImpl{playlists: playlists, videos: videos}
}

func (s *PlaylistServiceImpl) Create(ctx context.Context, actor uuid.UUID, name, description string) (*model.Playlist, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	n, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	p := &model.Playlist{
		ID:          id,
		OwnerID:     actor,
		Name:        n,
		Description: strings.TrimSpace(description),
		Videos:      []uuid.UUID{},
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistServiceImpl) ListByUser(ctx context.Context, userRef string) ([]model.Playlist, error) {
	userID, err := ident.Parse("userId", userRef)
	if err != nil {
		return nil, err
	}
	return s.playlists.ListByOwner(ctx, userID)
}

func (s *PlaylistServiceImpl) Get(ctx context.Context, playlistRef string) (*model.Playlist, error) {
	id, err := ident.Parse("playlistId", playlistRef)
	if err != nil {
		return nil, err
	}
	return s.playlists.Get(ctx, id)
}

func (s *PlaylistServiceImpl) AddVideo(ctx context.Context, actor uuid.UUID, playlistRef, videoRef string) (*model.Playlist, error) {
	videoID, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, actor, playlistRef)
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.Get(ctx, videoID); err != nil {
		return nil, err
	}
	if err := s.playlists.AppendVideo(ctx, p.ID, videoID); err != nil {
		return nil, err
	}
	return s.playlists.Get(ctx, p.ID)
}

func (s *PlaylistServiceImpl) RemoveVideo(ctx context.Context, actor uuid.UUID, playlistRef, videoRef string) (*model.Playlist, error) {
	videoID, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, actor, playlistRef)
	if err != nil {
		return nil, err
	}
	if err := s.playlists.RemoveVideo(ctx, p.ID, videoID); err != nil {
		return nil, err
	}
	return s.playlists.Get(ctx, p.ID)
}

func (s *PlaylistServiceImpl) Update(ctx context.Context, actor uuid.UUID, playlistRef, name, description string) (*model.Playlist, error) {
	p, err := s.owned(ctx, actor, playlistRef)
	if err != nil {
		return nil, err
	}
	n, d := strings.TrimSpace(name), strings.TrimSpace(description)
	if n == "" && d == "" {
		return nil, errs.InvalidParameter("name", name)
	}
	if n != "" {
		p.Name = n
	}
	if d != "" {
		p.Description = d
	}
	if err := s.playlists.Update(ctx, p.ID, p.Name, p.Description); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistServiceImpl) Delete(ctx context.Context, actor uuid.UUID, playlistRef string) error {
	p, err := s.owned(ctx, actor, playlistRef)
	if err != nil {
		return err
	}
	return s.playlists.Delete(ctx, p.ID)
}

func (s *PlaylistServiceImpl) owned(ctx context.Context, actor uuid.UUID, playlistRef string) (*model.Playlist, error) {
	id, err := ident.Parse("playlistId", playlistRef)
	if err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	p, err := s.playlists.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, p.OwnerID); err != nil {
		return nil, err
	}
	return p, nil
}
