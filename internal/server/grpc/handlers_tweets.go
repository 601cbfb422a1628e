package grpcserver

import (
	"context"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/convert"
)

func (s *Server) CreateTweet(ctx context.Context, req *api.CreateTweetRequest) (*api.Tweet, error) {
	t, err := s.svc.Tweets.Create(ctx, actor(ctx), req.Content)
	if err != nil {
		return nil, s.toStatus(api.MethodCreateTweet, err)
	}
	w := convert.ToWireTweet(*t)
	return &w, nil
}

func (s *Server) UserTweets(ctx context.Context, req *api.UserIDRequest) (*api.TweetList, error) {
	ts, err := s.svc.Tweets.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, s.toStatus(api.MethodUserTweets, err)
	}
	return &api.TweetList{Items: convert.ToWireTweets(ts)}, nil
}

func (s *Server) UpdateTweet(ctx context.Context, req *api.UpdateTweetRequest) (*api.Tweet, error) {
	t, err := s.svc.Tweets.Update(ctx, actor(ctx), req.TweetID, req.Content)
	if err != nil {
		return nil, s.toStatus(api.MethodUpdateTweet, err)
	}
	w := convert.ToWireTweet(*t)
	return &w, nil
}

func (s *Server) DeleteTweet(ctx context.Context, req *api.TweetIDRequest) (*api.Empty, error) {
	if err := s.svc.Tweets.Delete(ctx, actor(ctx), req.TweetID); err != nil {
		return nil, s.toStatus(api.MethodDeleteTweet, err)
	}
	return &api.Empty{}, nil
}
