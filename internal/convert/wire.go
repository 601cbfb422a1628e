// Package convert maps domain models to wire messages and back.
package convert

import (
	u "github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/api"
	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/service"
)

// --- helpers ---

func mapSlice[T, W any](in []T, fn func(T) W) []W {
	out := make([]W, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func ids(in []u.UUID) []string {
	return mapSlice(in, u.UUID.String)
}

// --- queries (client -> server) ---

// FromWireQuery turns listing parameters into a raw discovery query.
func FromWireQuery(q api.ListQuery) discovery.RawQuery {
	return discovery.RawQuery{
		Page:     q.Page,
		Limit:    q.Limit,
		Query:    q.Query,
		SortBy:   q.SortBy,
		SortType: q.SortType,
		Owner:    q.UserID,
	}
}

// FromWirePublish converts an upload request.
func FromWirePublish(r *api.PublishVideoRequest) service.NewVideo {
	return service.NewVideo{
		Title:        r.Title,
		Description:  r.Description,
		MediaRef:     r.MediaRef,
		ThumbnailRef: r.ThumbnailRef,
		Duration:     r.Duration,
	}
}

// FromWireVideoPatch keeps nil for absent fields.
func FromWireVideoPatch(r *api.UpdateVideoRequest) model.VideoPatch {
	return model.VideoPatch{Title: r.Title, Description: r.Description, ThumbnailRef: r.ThumbnailRef}
}

// --- server -> client ---

func ToWireVideo(v model.Video) api.Video {
	return api.Video{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		Title:        v.Title,
		Description:  v.Description,
		MediaRef:     v.MediaRef,
		ThumbnailRef: v.ThumbnailRef,
		Duration:     v.Duration,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
	}
}

func ToWireVideos(vs []model.Video) []api.Video {
	return mapSlice(vs, ToWireVideo)
}

// ToWireVideoPage converts a discovery page; Items is never null on the wire.
func ToWireVideoPage(p discovery.Page[model.Video]) *api.VideoPage {
	return &api.VideoPage{
		Items:       ToWireVideos(p.Items),
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func ToWireComment(c model.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID.String(),
		VideoID:   c.VideoID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func ToWireCommentPage(p discovery.Page[model.Comment]) *api.CommentPage {
	return &api.CommentPage{
		Items:       mapSlice(p.Items, ToWireComment),
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func ToWireTweet(t model.Tweet) api.Tweet {
	return api.Tweet{
		ID:        t.ID.String(),
		AuthorID:  t.AuthorID.String(),
		Content:   t.Text,
		CreatedAt: t.CreatedAt,
	}
}

func ToWireTweets(ts []model.Tweet) []api.Tweet {
	return mapSlice(ts, ToWireTweet)
}

func ToWirePlaylist(p model.Playlist) api.Playlist {
	return api.Playlist{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		Videos:      ids(p.Videos),
		CreatedAt:   p.CreatedAt,
	}
}

func ToWirePlaylists(ps []model.Playlist) []api.Playlist {
	return mapSlice(ps, ToWirePlaylist)
}

func ToWireChannels(cs []model.Channel) []api.Channel {
	return mapSlice(cs, func(c model.Channel) api.Channel {
		return api.Channel{ID: c.ID.String(), Username: c.Username}
	})
}
