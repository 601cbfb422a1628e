package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"

	"github.com/and161185/vidshare/internal/api"
)

// env is what a command runs against.
type env struct {
	cc  grpc.ClientConnInterface
	out io.Writer
	// save persists a fresh login; nil disables persistence.
	save func(tokenFile) error
}

type command func(ctx context.Context, e env, args []string) error

var commands = map[string]command{
	"register":       cmdRegister,
	"login":          cmdLogin,
	"videos":         cmdVideos,
	"video":          cmdVideo,
	"publish":        cmdPublish,
	"edit-video":     cmdEditVideo,
	"rm-video":       videoIDCall(api.MethodDeleteVideo),
	"toggle-publish": cmdTogglePublish,
	"like":           cmdLike,
	"liked":          cmdLiked,
	"subscribe":      cmdSubscribe,
	"subscribers":    cmdSubscribers,
	"subscriptions":  cmdSubscriptions,
	"comments":       cmdComments,
	"comment":        cmdComment,
	"edit-comment":   cmdEditComment,
	"rm-comment":     cmdRmComment,
	"tweet":          cmdTweet,
	"tweets":         cmdTweets,
	"edit-tweet":     cmdEditTweet,
	"rm-tweet":       cmdRmTweet,
	"playlist-new":   cmdPlaylistNew,
	"playlists":      cmdPlaylists,
	"playlist":       cmdPlaylist,
	"playlist-edit":  cmdPlaylistEdit,
	"playlist-add":   playlistVideoCall(api.MethodAddVideoToPlaylist),
	"playlist-rm":    playlistVideoCall(api.MethodRemoveVideoFromPlaylist),
	"rm-playlist":    cmdRmPlaylist,
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// call invokes method and prints the reply.
func call[Req, Resp any](ctx context.Context, e env, method string, req *Req) error {
	resp, err := api.Call[Req, Resp](ctx, e.cc, method, req)
	if err != nil {
		return err
	}
	return printJSON(e.out, resp)
}

func required(fs *flag.FlagSet, names ...string) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, n := range names {
		if !set[n] {
			return fmt.Errorf("%s: -%s is required", fs.Name(), n)
		}
	}
	return nil
}

// ---- auth ----

func credFlags(name string, args []string) (string, string, error) {
	fs := newFlags(name)
	u := fs.String("u", "", "username")
	p := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if err := required(fs, "u", "p"); err != nil {
		return "", "", err
	}
	return *u, *p, nil
}

func cmdRegister(ctx context.Context, e env, args []string) error {
	u, p, err := credFlags("register", args)
	if err != nil {
		return err
	}
	return call[api.RegisterRequest, api.RegisterResponse](ctx, e, api.MethodRegister,
		&api.RegisterRequest{Username: u, Password: p})
}

func cmdLogin(ctx context.Context, e env, args []string) error {
	u, p, err := credFlags("login", args)
	if err != nil {
		return err
	}
	resp, err := api.Call[api.LoginRequest, api.LoginResponse](ctx, e.cc, api.MethodLogin,
		&api.LoginRequest{Username: u, Password: p})
	if err != nil {
		return err
	}
	if e.save != nil {
		if err := e.save(tokenFile{AccessToken: resp.AccessToken, ExpiresAt: resp.ExpiresAt, UserID: resp.UserID}); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
	}
	_, err = fmt.Fprintf(e.out, "logged in as %s (%s), token expires %s\n",
		resp.Username, resp.UserID, resp.ExpiresAt.Format(time.RFC3339))
	return err
}

// ---- videos ----

func listFlags(fs *flag.FlagSet, q *api.ListQuery) {
	fs.StringVar(&q.Page, "page", "", "page number")
	fs.StringVar(&q.Limit, "limit", "", "page size")
	fs.StringVar(&q.Query, "q", "", "search text")
	fs.StringVar(&q.SortBy, "sort", "", "sort field")
	fs.StringVar(&q.SortType, "order", "", "asc|desc")
}

func cmdVideos(ctx context.Context, e env, args []string) error {
	var q api.ListQuery
	fs := newFlags("videos")
	listFlags(fs, &q)
	fs.StringVar(&q.UserID, "owner", "", "owner id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return call[api.ListQuery, api.VideoPage](ctx, e, api.MethodListVideos, &q)
}

func idFlag(name string, args []string) (string, error) {
	fs := newFlags(name)
	id := fs.String("id", "", "id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if err := required(fs, "id"); err != nil {
		return "", err
	}
	return *id, nil
}

func cmdVideo(ctx context.Context, e env, args []string) error {
	id, err := idFlag("video", args)
	if err != nil {
		return err
	}
	return call[api.VideoIDRequest, api.Video](ctx, e, api.MethodGetVideo, &api.VideoIDRequest{VideoID: id})
}

func cmdTogglePublish(ctx context.Context, e env, args []string) error {
	id, err := idFlag("toggle-publish", args)
	if err != nil {
		return err
	}
	return call[api.VideoIDRequest, api.Video](ctx, e, api.MethodTogglePublish, &api.VideoIDRequest{VideoID: id})
}

func videoIDCall(method string) command {
	return func(ctx context.Context, e env, args []string) error {
		id, err := idFlag(method, args)
		if err != nil {
			return err
		}
		return call[api.VideoIDRequest, api.Empty](ctx, e, method, &api.VideoIDRequest{VideoID: id})
	}
}

func cmdPublish(ctx context.Context, e env, args []string) error {
	var r api.PublishVideoRequest
	fs := newFlags("publish")
	fs.StringVar(&r.Title, "title", "", "title")
	fs.StringVar(&r.Description, "desc", "", "description")
	fs.StringVar(&r.MediaRef, "media", "", "media reference")
	fs.StringVar(&r.ThumbnailRef, "thumb", "", "thumbnail reference")
	fs.Int64Var(&r.Duration, "duration", 0, "duration in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return call[api.PublishVideoRequest, api.Video](ctx, e, api.MethodPublishVideo, &r)
}

func cmdEditVideo(ctx context.Context, e env, args []string) error {
	r := api.UpdateVideoRequest{}
	fs := newFlags("edit-video")
	fs.StringVar(&r.VideoID, "id", "", "video id")
	title := fs.String("title", "", "new title")
	desc := fs.String("desc", "", "new description")
	thumb := fs.String("thumb", "", "new thumbnail reference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	// only flags given on the command line are sent
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			r.Title = title
		case "desc":
			r.Description = desc
		case "thumb":
			r.ThumbnailRef = thumb
		}
	})
	return call[api.UpdateVideoRequest, api.Video](ctx, e, api.MethodUpdateVideo, &r)
}

// ---- relationships ----

func cmdLike(ctx context.Context, e env, args []string) error {
	fs := newFlags("like")
	video := fs.String("video", "", "video id")
	comment := fs.String("comment", "", "comment id")
	tweet := fs.String("tweet", "", "tweet id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var method, target string
	n := 0
	fs.Visit(func(f *flag.Flag) {
		n++
		switch f.Name {
		case "video":
			method, target = api.MethodToggleVideoLike, *video
		case "comment":
			method, target = api.MethodToggleCommentLike, *comment
		case "tweet":
			method, target = api.MethodToggleTweetLike, *tweet
		}
	})
	if n != 1 {
		return errors.New("like: exactly one of -video, -comment, -tweet is required")
	}
	return call[api.ToggleLikeRequest, api.ToggleResponse](ctx, e, method, &api.ToggleLikeRequest{TargetID: target})
}

func cmdLiked(ctx context.Context, e env, args []string) error {
	if err := newFlags("liked").Parse(args); err != nil {
		return err
	}
	return call[api.Empty, api.VideoList](ctx, e, api.MethodLikedVideos, &api.Empty{})
}

func cmdSubscribe(ctx context.Context, e env, args []string) error {
	fs := newFlags("subscribe")
	ch := fs.String("channel", "", "channel id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "channel"); err != nil {
		return err
	}
	return call[api.ToggleSubscriptionRequest, api.ToggleResponse](ctx, e, api.MethodToggleSubscription,
		&api.ToggleSubscriptionRequest{ChannelID: *ch})
}

func cmdSubscribers(ctx context.Context, e env, args []string) error {
	fs := newFlags("subscribers")
	ch := fs.String("channel", "", "channel id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "channel"); err != nil {
		return err
	}
	return call[api.ChannelSubscribersRequest, api.ChannelList](ctx, e, api.MethodChannelSubscribers,
		&api.ChannelSubscribersRequest{ChannelID: *ch})
}

func cmdSubscriptions(ctx context.Context, e env, args []string) error {
	fs := newFlags("subscriptions")
	sub := fs.String("user", "", "subscriber id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "user"); err != nil {
		return err
	}
	return call[api.SubscribedChannelsRequest, api.ChannelList](ctx, e, api.MethodSubscribedChannels,
		&api.SubscribedChannelsRequest{SubscriberID: *sub})
}

// ---- comments ----

func cmdComments(ctx context.Context, e env, args []string) error {
	var r api.ListCommentsRequest
	fs := newFlags("comments")
	fs.StringVar(&r.VideoID, "video", "", "video id")
	listFlags(fs, &r.ListQuery)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "video"); err != nil {
		return err
	}
	return call[api.ListCommentsRequest, api.CommentPage](ctx, e, api.MethodListComments, &r)
}

func cmdComment(ctx context.Context, e env, args []string) error {
	var r api.AddCommentRequest
	fs := newFlags("comment")
	fs.StringVar(&r.VideoID, "video", "", "video id")
	fs.StringVar(&r.Content, "text", "", "comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "video"); err != nil {
		return err
	}
	return call[api.AddCommentRequest, api.Comment](ctx, e, api.MethodAddComment, &r)
}

func cmdEditComment(ctx context.Context, e env, args []string) error {
	var r api.UpdateCommentRequest
	fs := newFlags("edit-comment")
	fs.StringVar(&r.CommentID, "id", "", "comment id")
	fs.StringVar(&r.Content, "text", "", "new text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	return call[api.UpdateCommentRequest, api.Comment](ctx, e, api.MethodUpdateComment, &r)
}

func cmdRmComment(ctx context.Context, e env, args []string) error {
	id, err := idFlag("rm-comment", args)
	if err != nil {
		return err
	}
	return call[api.CommentIDRequest, api.Empty](ctx, e, api.MethodDeleteComment, &api.CommentIDRequest{CommentID: id})
}

// ---- tweets ----

func cmdTweet(ctx context.Context, e env, args []string) error {
	var r api.CreateTweetRequest
	fs := newFlags("tweet")
	fs.StringVar(&r.Content, "text", "", "tweet text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return call[api.CreateTweetRequest, api.Tweet](ctx, e, api.MethodCreateTweet, &r)
}

func cmdTweets(ctx context.Context, e env, args []string) error {
	fs := newFlags("tweets")
	user := fs.String("user", "", "author id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "user"); err != nil {
		return err
	}
	return call[api.UserIDRequest, api.TweetList](ctx, e, api.MethodUserTweets, &api.UserIDRequest{UserID: *user})
}

func cmdEditTweet(ctx context.Context, e env, args []string) error {
	var r api.UpdateTweetRequest
	fs := newFlags("edit-tweet")
	fs.StringVar(&r.TweetID, "id", "", "tweet id")
	fs.StringVar(&r.Content, "text", "", "new text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	return call[api.UpdateTweetRequest, api.Tweet](ctx, e, api.MethodUpdateTweet, &r)
}

func cmdRmTweet(ctx context.Context, e env, args []string) error {
	id, err := idFlag("rm-tweet", args)
	if err != nil {
		return err
	}
	return call[api.TweetIDRequest, api.Empty](ctx, e, api.MethodDeleteTweet, &api.TweetIDRequest{TweetID: id})
}

// ---- playlists ----

func cmdPlaylistNew(ctx context.Context, e env, args []string) error {
	var r api.CreatePlaylistRequest
	fs := newFlags("playlist-new")
	fs.StringVar(&r.Name, "name", "", "playlist name")
	fs.StringVar(&r.Description, "desc", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return call[api.CreatePlaylistRequest, api.Playlist](ctx, e, api.MethodCreatePlaylist, &r)
}

func cmdPlaylists(ctx context.Context, e env, args []string) error {
	fs := newFlags("playlists")
	user := fs.String("user", "", "owner id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "user"); err != nil {
		return err
	}
	return call[api.UserIDRequest, api.PlaylistList](ctx, e, api.MethodUserPlaylists, &api.UserIDRequest{UserID: *user})
}

func cmdPlaylist(ctx context.Context, e env, args []string) error {
	id, err := idFlag("playlist", args)
	if err != nil {
		return err
	}
	return call[api.PlaylistIDRequest, api.Playlist](ctx, e, api.MethodGetPlaylist, &api.PlaylistIDRequest{PlaylistID: id})
}

func cmdPlaylistEdit(ctx context.Context, e env, args []string) error {
	var r api.UpdatePlaylistRequest
	fs := newFlags("playlist-edit")
	fs.StringVar(&r.PlaylistID, "id", "", "playlist id")
	fs.StringVar(&r.Name, "name", "", "new name")
	fs.StringVar(&r.Description, "desc", "", "new description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	return call[api.UpdatePlaylistRequest, api.Playlist](ctx, e, api.MethodUpdatePlaylist, &r)
}

func cmdRmPlaylist(ctx context.Context, e env, args []string) error {
	id, err := idFlag("rm-playlist", args)
	if err != nil {
		return err
	}
	return call[api.PlaylistIDRequest, api.Empty](ctx, e, api.MethodDeletePlaylist, &api.PlaylistIDRequest{PlaylistID: id})
}

func playlistVideoCall(method string) command {
	return func(ctx context.Context, e env, args []string) error {
		var r api.PlaylistVideoRequest
		fs := newFlags(method)
		fs.StringVar(&r.PlaylistID, "playlist", "", "playlist id")
		fs.StringVar(&r.VideoID, "video", "", "video id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := required(fs, "playlist", "video"); err != nil {
			return err
		}
		return call[api.PlaylistVideoRequest, api.Playlist](ctx, e, method, &r)
	}
}
