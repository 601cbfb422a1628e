package grpcserver

import (
	"context"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/convert"
	"github.com/and161185/vidshare/internal/model"
)

func wirePlaylist(p *model.Playlist) *api.Playlist {
	w := convert.ToWirePlaylist(*p)
	return &w
}

func (s *Server) CreatePlaylist(ctx context.Context, req *api.CreatePlaylistRequest) (*api.Playlist, error) {
	p, err := s.svc.Playlists.Create(ctx, actor(ctx), req.Name, req.Description)
	if err != nil {
		return nil, s.toStatus(api.MethodCreatePlaylist, err)
	}
	return wirePlaylist(p), nil
}

func (s *Server) UserPlaylists(ctx context.Context, req *api.UserIDRequest) (*api.PlaylistList, error) {
	ps, err := s.svc.Playlists.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, s.toStatus(api.MethodUserPlaylists, err)
	}
	return &api.PlaylistList{Items: convert.ToWirePlaylists(ps)}, nil
}

func (s *Server) GetPlaylist(ctx context.Context, req *api.PlaylistIDRequest) (*api.Playlist, error) {
	p, err := s.svc.Playlists.Get(ctx, req.PlaylistID)
	if err != nil {
		return nil, s.toStatus(api.MethodGetPlaylist, err)
	}
	return wirePlaylist(p), nil
}

func (s *Server) AddVideoToPlaylist(ctx context.Context, req *api.PlaylistVideoRequest) (*api.Playlist, error) {
	p, err := s.svc.Playlists.AddVideo(ctx, actor(ctx), req.PlaylistID, req.VideoID)
	if err != nil {
		return nil, s.toStatus(api.MethodAddVideoToPlaylist, err)
	}
	return wirePlaylist(p), nil
}

func (s *Server) RemoveVideoFromPlaylist(ctx context.Context, req *api.PlaylistVideoRequest) (*api.Playlist, error) {
	p, err := s.svc.Playlists.RemoveVideo(ctx, actor(ctx), req.PlaylistID, req.VideoID)
	if err != nil {
		return nil, s.toStatus(api.MethodRemoveVideoFromPlaylist, err)
	}
	return wirePlaylist(p), nil
}

func (s *Server) UpdatePlaylist(ctx context.Context, req *api.UpdatePlaylistRequest) (*api.Playlist, error) {
	p, err := s.svc.Playlists.Update(ctx, actor(ctx), req.PlaylistID, req.Name, req.Description)
	if err != nil {
		return nil, s.toStatus(api.MethodUpdatePlaylist, err)
	}
	return wirePlaylist(p), nil
}

func (s *Server) DeletePlaylist(ctx context.Context, req *api.PlaylistIDRequest) (*api.Empty, error) {
	if err := s.svc.Playlists.Delete(ctx, actor(ctx), req.PlaylistID); err != nil {
		return nil, s.toStatus(api.MethodDeletePlaylist, err)
	}
	return &api.Empty{}, nil
}
