// Package api defines the wire messages of the vidshare.v1.VidShare gRPC
// service. Messages travel as JSON under the "json" content-subtype.
package api

import "time"

// Empty is used for requests and responses without fields.
type Empty struct{}

// --- auth ---

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
}

// --- relationships ---

// ToggleLikeRequest targets a video, comment or tweet depending on the method.
type ToggleLikeRequest struct {
	TargetID string `json:"targetId"`
}

type ToggleSubscriptionRequest struct {
	ChannelID string `json:"channelId"`
}

type ToggleResponse struct {
	Active bool `json:"active"`
}

type ChannelSubscribersRequest struct {
	ChannelID string `json:"channelId"`
}

type SubscribedChannelsRequest struct {
	SubscriberID string `json:"subscriberId"`
}

type Channel struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ChannelList struct {
	Items []Channel `json:"items"`
}

// --- discovery ---

// ListQuery carries listing parameters verbatim; the server validates them.
type ListQuery struct {
	Page     string `json:"page,omitempty"`
	Limit    string `json:"limit,omitempty"`
	Query    string `json:"query,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
	SortType string `json:"sortType,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

// --- videos ---

type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MediaRef     string    `json:"mediaRef"`
	ThumbnailRef string    `json:"thumbnailRef"`
	Duration     int64     `json:"duration"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
}

type VideoPage struct {
	Items       []Video `json:"items"`
	TotalItems  int64   `json:"totalItems"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

type VideoList struct {
	Items []Video `json:"items"`
}

type PublishVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	MediaRef     string `json:"mediaRef"`
	ThumbnailRef string `json:"thumbnailRef"`
	Duration     int64  `json:"duration"`
}

type VideoIDRequest struct {
	VideoID string `json:"videoId"`
}

// UpdateVideoRequest leaves absent fields unchanged.
type UpdateVideoRequest struct {
	VideoID      string  `json:"videoId"`
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	ThumbnailRef *string `json:"thumbnailRef,omitempty"`
}

// --- comments ---

type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentPage struct {
	Items       []Comment `json:"items"`
	TotalItems  int64     `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

type ListCommentsRequest struct {
	VideoID string `json:"videoId"`
	ListQuery
}

type AddCommentRequest struct {
	VideoID string `json:"videoId"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	CommentID string `json:"commentId"`
	Content   string `json:"content"`
}

type CommentIDRequest struct {
	CommentID string `json:"commentId"`
}

// --- tweets ---

type Tweet struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type TweetList struct {
	Items []Tweet `json:"items"`
}

type CreateTweetRequest struct {
	Content string `json:"content"`
}

type UpdateTweetRequest struct {
	TweetID string `json:"tweetId"`
	Content string `json:"content"`
}

type TweetIDRequest struct {
	TweetID string `json:"tweetId"`
}

type UserIDRequest struct {
	UserID string `json:"userId"`
}

// --- playlists ---

type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Videos      []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PlaylistList struct {
	Items []Playlist `json:"items"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	PlaylistID  string `json:"playlistId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistIDRequest struct {
	PlaylistID string `json:"playlistId"`
}

type PlaylistVideoRequest struct {
	PlaylistID string `json:"playlistId"`
	VideoID    string `json:"videoId"`
}
