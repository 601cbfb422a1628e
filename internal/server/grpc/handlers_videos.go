package grpcserver

import (
	"context"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/convert"
	"github.com/and161185/vidshare/internal/model"
)

func wireVideo(v *model.Video) *api.Video {
	w := convert.ToWireVideo(*v)
	return &w
}

// ListVideos serves the paginated discovery listing.
func (s *Server) ListVideos(ctx context.Context, req *api.ListQuery) (*api.VideoPage, error) {
	page, err := s.svc.Videos.List(ctx, convert.FromWireQuery(*req))
	if err != nil {
		return nil, s.toStatus(api.MethodListVideos, err)
	}
	return convert.ToWireVideoPage(page), nil
}

func (s *Server) PublishVideo(ctx context.Context, req *api.PublishVideoRequest) (*api.Video, error) {
	v, err := s.svc.Videos.Publish(ctx, actor(ctx), convert.FromWirePublish(req))
	if err != nil {
		return nil, s.toStatus(api.MethodPublishVideo, err)
	}
	return wireVideo(v), nil
}

func (s *Server) GetVideo(ctx context.Context, req *api.VideoIDRequest) (*api.Video, error) {
	v, err := s.svc.Videos.Get(ctx, req.VideoID)
	if err != nil {
		return nil, s.toStatus(api.MethodGetVideo, err)
	}
	return wireVideo(v), nil
}

func (s *Server) UpdateVideo(ctx context.Context, req *api.UpdateVideoRequest) (*api.Video, error) {
	v, err := s.svc.Videos.Update(ctx, actor(ctx), req.VideoID, convert.FromWireVideoPatch(req))
	if err != nil {
		return nil, s.toStatus(api.MethodUpdateVideo, err)
	}
	return wireVideo(v), nil
}

func (s *Server) DeleteVideo(ctx context.Context, req *api.VideoIDRequest) (*api.Empty, error) {
	if err := s.svc.Videos.Delete(ctx, actor(ctx), req.VideoID); err != nil {
		return nil, s.toStatus(api.MethodDeleteVideo, err)
	}
	return &api.Empty{}, nil
}

func (s *Server) TogglePublish(ctx context.Context, req *api.VideoIDRequest) (*api.Video, error) {
	v, err := s.svc.Videos.TogglePublish(ctx, actor(ctx), req.VideoID)
	if err != nil {
		return nil, s.toStatus(api.MethodTogglePublish, err)
	}
	return wireVideo(v), nil
}
