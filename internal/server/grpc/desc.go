package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"github.com/and161185/vidshare/internal/api"
)

// VidShareServer is the server API of the vidshare.v1.VidShare service.
type VidShareServer interface {
	Register(context.Context, *api.RegisterRequest) (*api.RegisterResponse, error)
	Login(context.Context, *api.LoginRequest) (*api.LoginResponse, error)

	ToggleVideoLike(context.Context, *api.ToggleLikeRequest) (*api.ToggleResponse, error)
	ToggleCommentLike(context.Context, *api.ToggleLikeRequest) (*api.ToggleResponse, error)
	ToggleTweetLike(context.Context, *api.ToggleLikeRequest) (*api.ToggleResponse, error)
	LikedVideos(context.Context, *api.Empty) (*api.VideoList, error)
	ToggleSubscription(context.Context, *api.ToggleSubscriptionRequest) (*api.ToggleResponse, error)
	ChannelSubscribers(context.Context, *api.ChannelSubscribersRequest) (*api.ChannelList, error)
	SubscribedChannels(context.Context, *api.SubscribedChannelsRequest) (*api.ChannelList, error)

	ListVideos(context.Context, *api.ListQuery) (*api.VideoPage, error)
	PublishVideo(context.Context, *api.PublishVideoRequest) (*api.Video, error)
	GetVideo(context.Context, *api.VideoIDRequest) (*api.Video, error)
	UpdateVideo(context.Context, *api.UpdateVideoRequest) (*api.Video, error)
	DeleteVideo(context.Context, *api.VideoIDRequest) (*api.Empty, error)
	TogglePublish(context.Context, *api.VideoIDRequest) (*api.Video, error)

	ListComments(context.Context, *api.ListCommentsRequest) (*api.CommentPage, error)
	AddComment(context.Context, *api.AddCommentRequest) (*api.Comment, error)
	UpdateComment(context.Context, *api.UpdateCommentRequest) (*api.Comment, error)
	DeleteComment(context.Context, *api.CommentIDRequest) (*api.Empty, error)

	CreateTweet(context.Context, *api.CreateTweetRequest) (*api.Tweet, error)
	UserTweets(context.Context, *api.UserIDRequest) (*api.TweetList, error)
	UpdateTweet(context.Context, *api.UpdateTweetRequest) (*api.Tweet, error)
	DeleteTweet(context.Context, *api.TweetIDRequest) (*api.Empty, error)

	CreatePlaylist(context.Context, *api.CreatePlaylistRequest) (*api.Playlist, error)
	UserPlaylists(context.Context, *api.UserIDRequest) (*api.PlaylistList, error)
	GetPlaylist(context.Context, *api.PlaylistIDRequest) (*api.Playlist, error)
	AddVideoToPlaylist(context.Context, *api.PlaylistVideoRequest) (*api.Playlist, error)
	RemoveVideoFromPlaylist(context.Context, *api.PlaylistVideoRequest) (*api.Playlist, error)
	UpdatePlaylist(context.Context, *api.UpdatePlaylistRequest) (*api.Playlist, error)
	DeletePlaylist(context.Context, *api.PlaylistIDRequest) (*api.Empty, error)
}

// ServiceDesc describes vidshare.v1.VidShare for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: api.ServiceName,
	HandlerType: (*VidShareServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(api.MethodRegister, VidShareServer.Register),
		unary(api.MethodLogin, VidShareServer.Login),

		unary(api.MethodToggleVideoLike, VidShareServer.ToggleVideoLike),
		unary(api.MethodToggleCommentLike, VidShareServer.ToggleCommentLike),
		unary(api.MethodToggleTweetLike, VidShareServer.ToggleTweetLike),
		unary(api.MethodLikedVideos, VidShareServer.LikedVideos),
		unary(api.MethodToggleSubscription, VidShareServer.ToggleSubscription),
		unary(api.MethodChannelSubscribers, VidShareServer.ChannelSubscribers),
		unary(api.MethodSubscribedChannels, VidShareServer.SubscribedChannels),

		unary(api.MethodListVideos, VidShareServer.ListVideos),
		unary(api.MethodPublishVideo, VidShareServer.PublishVideo),
		unary(api.MethodGetVideo, VidShareServer.GetVideo),
		unary(api.MethodUpdateVideo, VidShareServer.UpdateVideo),
		unary(api.MethodDeleteVideo, VidShareServer.DeleteVideo),
		unary(api.MethodTogglePublish, VidShareServer.TogglePublish),

		unary(api.MethodListComments, VidShareServer.ListComments),
		unary(api.MethodAddComment, VidShareServer.AddComment),
		unary(api.MethodUpdateComment, VidShareServer.UpdateComment),
		unary(api.MethodDeleteComment, VidShareServer.DeleteComment),

		unary(api.MethodCreateTweet, VidShareServer.CreateTweet),
		unary(api.MethodUserTweets, VidShareServer.UserTweets),
		unary(api.MethodUpdateTweet, VidShareServer.UpdateTweet),
		unary(api.MethodDeleteTweet, VidShareServer.DeleteTweet),

		unary(api.MethodCreatePlaylist, VidShareServer.CreatePlaylist),
		unary(api.MethodUserPlaylists, VidShareServer.UserPlaylists),
		unary(api.MethodGetPlaylist, VidShareServer.GetPlaylist),
		unary(api.MethodAddVideoToPlaylist, VidShareServer.AddVideoToPlaylist),
		unary(api.MethodRemoveVideoFromPlaylist, VidShareServer.RemoveVideoFromPlaylist),
		unary(api.MethodUpdatePlaylist, VidShareServer.UpdatePlaylist),
		unary(api.MethodDeletePlaylist, VidShareServer.DeletePlaylist),
	},
	Streams: []grpc.StreamDesc{},
}

// Register attaches srv to gs.
func Register(gs grpc.ServiceRegistrar, srv VidShareServer) {
	gs.RegisterService(&ServiceDesc, srv)
}

// unary builds a method descriptor that decodes Req and runs fn through the interceptor chain.
func unary[Req, Resp any](name string, fn func(VidShareServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := api.FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return fn(srv.(VidShareServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			handler := func(ctx context.Context, req any) (any, error) {
				return fn(srv.(VidShareServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
