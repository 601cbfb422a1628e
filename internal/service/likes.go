package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// LikeService toggles likes and lists liked videos.
type LikeService interface {
	ToggleVideoLike(ctx context.Context, actor uuid.UUID, videoRef string) (model.ToggleResult, error)
	ToggleCommentLike(ctx context.Context, actor uuid.UUID, commentRef string) (model.ToggleResult, error)
	ToggleTweetLike(ctx context.Context, actor uuid.UUID, tweetRef string) (model.ToggleResult, error)
	// LikedVideos returns videos the actor likes, most recent like first.
	LikedVideos(ctx context.Context, actor uuid.UUID) ([]model.Video, error)
}

type LikeServiceImpl struct {
	toggler *Toggler
	videos  repository.VideoRepository
}

// NewLikeService constructs LikeService.
func NewLikeService(toggler *Toggler, videos repository.VideoRepository) *LikeServiceImpl {
	return &LikeServiceImpl{toggler: toggler, videos: videos}
}

func (s *LikeServiceImpl) ToggleVideoLike(ctx context.Context, actor uuid.UUID, videoRef string) (model.ToggleResult, error) {
	return s.toggle(ctx, actor, "videoId", videoRef, model.KindVideo)
}

func (s *LikeServiceImpl) ToggleCommentLike(ctx context.Context, actor uuid.UUID, commentRef string) (model.ToggleResult, error) {
	return s.toggle(ctx, actor, "commentId", commentRef, model.KindComment)
}

func (s *LikeServiceImpl) ToggleTweetLike(ctx context.Context, actor uuid.UUID, tweetRef string) (model.ToggleResult, error) {
	return s.toggle(ctx, actor, "tweetId", tweetRef, model.KindTweet)
}

func (s *LikeServiceImpl) toggle(ctx context.Context, actor uuid.UUID, field, ref string, kind model.ObjectKind) (model.ToggleResult, error) {
	id, err := ident.Parse(field, ref)
	if err != nil {
		return model.ToggleResult{}, err
	}
	if err := requireActor(actor); err != nil {
		return model.ToggleResult{}, err
	}
	return s.toggler.Toggle(ctx, actor, id, kind)
}

func (s *LikeServiceImpl) LikedVideos(ctx context.Context, actor uuid.UUID) ([]model.Video, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.videos.ListLikedBy(ctx, actor)
}
