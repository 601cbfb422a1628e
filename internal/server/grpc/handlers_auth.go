package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/errs"
)

// Register creates a new user account.
func (s *Server) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	id, err := s.svc.Auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, status.Error(codes.AlreadyExists, "username taken")
		}
		return nil, s.toStatus(api.MethodRegister, err)
	}
	return &api.RegisterResponse{UserID: id.String()}, nil
}

// Login authenticates a user and returns an access token.
func (s *Server) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	tok, u, err := s.svc.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "bad credentials")
		}
		return nil, s.toStatus(api.MethodLogin, err)
	}
	return &api.LoginResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   tok.ExpiresAt,
		UserID:      u.ID.String(),
		Username:    u.Username,
	}, nil
}
