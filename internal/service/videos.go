package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/access"
	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// NewVideo carries the fields of an upload. Media and thumbnail are opaque
// references issued by the media store.
type NewVideo struct {
	Title        string
	Description  string
	MediaRef     string
	ThumbnailRef string
	Duration     int64
}

// VideoService manages videos and serves the discovery listing.
type VideoService interface {
	List(ctx context.Context, raw discovery.RawQuery) (discovery.Page[model.Video], error)
	Publish(ctx context.Context, actor uuid.UUID, nv NewVideo) (*model.Video, error)
	Get(ctx context.Context, videoRef string) (*model.Video, error)
	Update(ctx context.Context, actor uuid.UUID, videoRef string, patch model.VideoPatch) (*model.Video, error)
	Delete(ctx context.Context, actor uuid.UUID, videoRef string) error
	TogglePublish(ctx context.Context, actor uuid.UUID, videoRef string) (*model.Video, error)
}

type VideoServiceImpl struct {
	videos repository.VideoRepository
	schema discovery.Schema
}

// NewVideoService constructs VideoService. maxLimit caps the page size; zero keeps the default.
func NewVideoService(videos repository.VideoRepository, maxLimit int) *VideoServiceImpl {
	return &VideoServiceImpl{videos: videos, schema: discovery.Videos.WithMaxLimit(maxLimit)}
}

func (s *VideoServiceImpl) List(ctx context.Context, raw discovery.RawQuery) (discovery.Page[model.Video], error) {
	d, err := s.schema.Build(raw)
	if err != nil {
		return discovery.Page[model.Video]{}, err
	}
	return discovery.Execute[model.Video](ctx, s.videos, d)
}

func (s *VideoServiceImpl) Publish(ctx context.Context, actor uuid.UUID, nv NewVideo) (*model.Video, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	title, err := requireText("title", nv.Title)
	if err != nil {
		return nil, err
	}
	media, err := requireText("mediaRef", nv.MediaRef)
	if err != nil {
		return nil, err
	}
	if nv.Duration < 0 {
		return nil, errs.InvalidParameter("duration", "negative")
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	v := &model.Video{
		ID:           id,
		OwnerID:      actor,
		Title:        title,
		Description:  strings.TrimSpace(nv.Description),
		MediaRef:     media,
		ThumbnailRef: strings.TrimSpace(nv.ThumbnailRef),
		Duration:     nv.Duration,
		IsPublished:  true,
	}
	if err := s.videos.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VideoServiceImpl) Get(ctx context.Context, videoRef string) (*model.Video, error) {
	id, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return nil, err
	}
	return s.videos.Get(ctx, id)
}

// Update applies patch to an owned video. Nil or blank fields keep the stored value.
func (s *VideoServiceImpl) Update(ctx context.Context, actor uuid.UUID, videoRef string, patch model.VideoPatch) (*model.Video, error) {
	v, err := s.owned(ctx, actor, videoRef)
	if err != nil {
		return nil, err
	}
	apply(&v.Title, patch.Title)
	apply(&v.Description, patch.Description)
	apply(&v.ThumbnailRef, patch.ThumbnailRef)
	if err := s.videos.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VideoServiceImpl) Delete(ctx context.Context, actor uuid.UUID, videoRef string) error {
	v, err := s.owned(ctx, actor, videoRef)
	if err != nil {
		return err
	}
	return s.videos.Delete(ctx, v.ID)
}

func (s *VideoServiceImpl) TogglePublish(ctx context.Context, actor uuid.UUID, videoRef string) (*model.Video, error) {
	v, err := s.owned(ctx, actor, videoRef)
	if err != nil {
		return nil, err
	}
	return s.videos.TogglePublished(ctx, v.ID)
}

// owned loads the video and checks that actor owns it.
func (s *VideoServiceImpl) owned(ctx context.Context, actor uuid.UUID, videoRef string) (*model.Video, error) {
	id, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	v, err := s.videos.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, v.OwnerID); err != nil {
		return nil, err
	}
	return v, nil
}

func apply(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}
