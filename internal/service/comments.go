package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/access"
	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// CommentService manages comments on videos.
type CommentService interface {
	// List pages through a video's comments.
	List(ctx context.Context, videoRef string, raw discovery.RawQuery) (discovery.Page[model.Comment], error)
	Add(ctx context.Context, actor uuid.UUID, videoRef, text string) (*model.Comment, error)
	Update(ctx context.Context, actor uuid.UUID, commentRef, text string) (*model.Comment, error)
	Delete(ctx context.Context, actor uuid.UUID, commentRef string) error
}

type CommentServiceImpl struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
	schema   discovery.Schema
}

// NewCommentService constructs CommentService.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository, maxLimit int) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments, videos: videos, schema: discovery.Comments.WithMaxLimit(maxLimit)}
}

func (s *CommentServiceImpl) List(ctx context.Context, videoRef string, raw discovery.RawQuery) (discovery.Page[model.Comment], error) {
	videoID, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return discovery.Page[model.Comment]{}, err
	}
	// comments are scoped by video; an owner filter does not apply
	raw.Owner = ""
	d, err := s.schema.Build(raw)
	if err != nil {
		return discovery.Page[model.Comment]{}, err
	}
	d.Filter.VideoID = videoID
	return discovery.Execute[model.Comment](ctx, s.comments, d)
}

func (s *CommentServiceImpl) Add(ctx context.Context, actor uuid.UUID, videoRef, text string) (*model.Comment, error) {
	videoID, err := ident.Parse("videoId", videoRef)
	if err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	body, err := requireText("text", text)
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.Get(ctx, videoID); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	c := &model.Comment{ID: id, VideoID: videoID, AuthorID: actor, Text: body}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentServiceImpl) Update(ctx context.Context, actor uuid.UUID, commentRef, text string) (*model.Comment, error) {
	c, err := s.owned(ctx, actor, commentRef)
	if err != nil {
		return nil, err
	}
	body, err := requireText("text", text)
	if err != nil {
		return nil, err
	}
	return s.comments.UpdateText(ctx, c.ID, body)
}

func (s *CommentServiceImpl) Delete(ctx context.Context, actor uuid.UUID, commentRef string) error {
	c, err := s.owned(ctx, actor, commentRef)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, c.ID)
}

func (s *CommentServiceImpl) owned(ctx context.Context, actor uuid.UUID, commentRef string) (*model.Comment, error) {
	id, err := ident.Parse("commentId", commentRef)
	if err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	c, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, c.AuthorID); err != nil {
		return nil, err
	}
	return c, nil
}
