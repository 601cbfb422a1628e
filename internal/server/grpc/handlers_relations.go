package grpcserver

import (
	"context"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/convert"
	"github.com/and161185/vidshare/internal/model"
)

func toggled(r model.ToggleResult) *api.ToggleResponse {
	return &api.ToggleResponse{Active: r.Active}
}

func (s *Server) ToggleVideoLike(ctx context.Context, req *api.ToggleLikeRequest) (*api.ToggleResponse, error) {
	res, err := s.svc.Likes.ToggleVideoLike(ctx, actor(ctx), req.TargetID)
	if err != nil {
		return nil, s.toStatus(api.MethodToggleVideoLike, err)
	}
	return toggled(res), nil
}

func (s *Server) ToggleCommentLike(ctx context.Context, req *api.ToggleLikeRequest) (*api.ToggleResponse, error) {
	res, err := s.svc.Likes.ToggleCommentLike(ctx, actor(ctx), req.TargetID)
	if err != nil {
		return nil, s.toStatus(api.MethodToggleCommentLike, err)
	}
	return toggled(res), nil
}

func (s *Server) ToggleTweetLike(ctx context.Context, req *api.ToggleLikeRequest) (*api.ToggleResponse, error) {
	res, err := s.svc.Likes.ToggleTweetLike(ctx, actor(ctx), req.TargetID)
	if err != nil {
		return nil, s.toStatus(api.MethodToggleTweetLike, err)
	}
	return toggled(res), nil
}

func (s *Server) LikedVideos(ctx context.Context, _ *api.Empty) (*api.VideoList, error) {
	vs, err := s.svc.Likes.LikedVideos(ctx, actor(ctx))
	if err != nil {
		return nil, s.toStatus(api.MethodLikedVideos, err)
	}
	return &api.VideoList{Items: convert.ToWireVideos(vs)}, nil
}

func (s *Server) ToggleSubscription(ctx context.Context, req *api.ToggleSubscriptionRequest) (*api.ToggleResponse, error) {
	res, err := s.svc.Subscriptions.Toggle(ctx, actor(ctx), req.ChannelID)
	if err != nil {
		return nil, s.toStatus(api.MethodToggleSubscription, err)
	}
	return toggled(res), nil
}

func (s *Server) ChannelSubscribers(ctx context.Context, req *api.ChannelSubscribersRequest) (*api.ChannelList, error) {
	cs, err := s.svc.Subscriptions.Subscribers(ctx, req.ChannelID)
	if err != nil {
		return nil, s.toStatus(api.MethodChannelSubscribers, err)
	}
	return &api.ChannelList{Items: convert.ToWireChannels(cs)}, nil
}

func (s *Server) SubscribedChannels(ctx context.Context, req *api.SubscribedChannelsRequest) (*api.ChannelList, error) {
	cs, err := s.svc.Subscriptions.SubscribedChannels(ctx, req.SubscriberID)
	if err != nil {
		return nil, s.toStatus(api.MethodSubscribedChannels, err)
	}
	return &api.ChannelList{Items: convert.ToWireChannels(cs)}, nil
}
