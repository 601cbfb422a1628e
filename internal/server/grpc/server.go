// Package grpcserver exposes the VidShare gRPC API handlers.
package grpcserver

import (
	"go.uber.org/zap"

	"github.com/and161185/vidshare/internal/service"
)

// Services groups the application services the handlers dispatch to.
type Services struct {
	Auth          service.AuthService
	Likes         service.LikeService
	Subscriptions service.SubscriptionService
	Videos        service.VideoService
	Comments      service.CommentService
	Tweets        service.TweetService
	Playlists     service.PlaylistService
}

// Server wires services into gRPC handlers.
type Server struct {
	svc Services
	log *zap.Logger
}

var _ VidShareServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(svc Services, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}
