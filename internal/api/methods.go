package api

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "vidshare.v1.VidShare"

// Method names of the VidShare service.
const (
	MethodRegister = "Register"
	MethodLogin    = "Login"

	MethodToggleVideoLike    = "ToggleVideoLike"
	MethodToggleCommentLike  = "ToggleCommentLike"
	MethodToggleTweetLike    = "ToggleTweetLike"
	MethodLikedVideos        = "LikedVideos"
	MethodToggleSubscription = "ToggleSubscription"
	MethodChannelSubscribers = "ChannelSubscribers"
	MethodSubscribedChannels = "SubscribedChannels"

	MethodListVideos    = "ListVideos"
	MethodPublishVideo  = "PublishVideo"
	MethodGetVideo      = "GetVideo"
	MethodUpdateVideo   = "UpdateVideo"
	MethodDeleteVideo   = "DeleteVideo"
	MethodTogglePublish = "TogglePublish"

	MethodListComments  = "ListComments"
	MethodAddComment    = "AddComment"
	MethodUpdateComment = "UpdateComment"
	MethodDeleteComment = "DeleteComment"

	MethodCreateTweet = "CreateTweet"
	MethodUserTweets  = "UserTweets"
	MethodUpdateTweet = "UpdateTweet"
	MethodDeleteTweet = "DeleteTweet"

	MethodCreatePlaylist          = "CreatePlaylist"
	MethodUserPlaylists           = "UserPlaylists"
	MethodGetPlaylist             = "GetPlaylist"
	MethodAddVideoToPlaylist      = "AddVideoToPlaylist"
	MethodRemoveVideoFromPlaylist = "RemoveVideoFromPlaylist"
	MethodUpdatePlaylist          = "UpdatePlaylist"
	MethodDeletePlaylist          = "DeletePlaylist"
)

// FullMethod returns "/vidshare.v1.VidShare/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PublicMethods are served without a bearer token.
var PublicMethods = map[string]bool{
	FullMethod(MethodRegister):           true,
	FullMethod(MethodLogin):              true,
	FullMethod(MethodChannelSubscribers): true,
	FullMethod(MethodSubscribedChannels): true,
	FullMethod(MethodListVideos):         true,
	FullMethod(MethodGetVideo):           true,
	FullMethod(MethodListComments):       true,
	FullMethod(MethodUserTweets):         true,
	FullMethod(MethodUserPlaylists):      true,
	FullMethod(MethodGetPlaylist):        true,
}
