package grpcserver

import (
	"context"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/convert"
)

func (s *Server) ListComments(ctx context.Context, req *api.ListCommentsRequest) (*api.CommentPage, error) {
	page, err := s.svc.Comments.List(ctx, req.VideoID, convert.FromWireQuery(req.ListQuery))
	if err != nil {
		return nil, s.toStatus(api.MethodListComments, err)
	}
	return convert.ToWireCommentPage(page), nil
}

func (s *Server) AddComment(ctx context.Context, req *api.AddCommentRequest) (*api.Comment, error) {
	c, err := s.svc.Comments.Add(ctx, actor(ctx), req.VideoID, req.Content)
	if err != nil {
		return nil, s.toStatus(api.MethodAddComment, err)
	}
	w := convert.ToWireComment(*c)
	return &w, nil
}

func (s *Server) UpdateComment(ctx context.Context, req *api.UpdateCommentRequest) (*api.Comment, error) {
	c, err := s.svc.Comments.Update(ctx, actor(ctx), req.CommentID, req.Content)
	if err != nil {
		return nil, s.toStatus(api.MethodUpdateComment, err)
	}
	w := convert.ToWireComment(*c)
	return &w, nil
}

func (s *Server) DeleteComment(ctx context.Context, req *api.CommentIDRequest) (*api.Empty, error) {
	if err := s.svc.Comments.Delete(ctx, actor(ctx), req.CommentID); err != nil {
		return nil, s.toStatus(api.MethodDeleteComment, err)
	}
	return &api.Empty{}, nil
}
