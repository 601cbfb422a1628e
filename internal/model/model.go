// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// ObjectKind names the kind of entity on the object side of an edge.
type ObjectKind string

const (
	KindVideo   ObjectKind = "video"
	KindComment ObjectKind = "comment"
	KindTweet   ObjectKind = "tweet"
	KindChannel ObjectKind = "channel"
)

// Valid reports whether k is one of the known kinds.
func (k ObjectKind) Valid() bool {
	switch k {
	case KindVideo, KindComment, KindTweet, KindChannel:
		return true
	}
	return false
}

// Edge is a like or a subscription. At most one exists per (SubjectID, ObjectID, Kind).
type Edge struct {
	ID        uuid.UUID
	SubjectID uuid.UUID // viewer / subscriber
	ObjectID  uuid.UUID // video, comment, tweet or channel
	Kind      ObjectKind
	CreatedAt time.Time
}

// ToggleResult reports the relationship state after a toggle.
type ToggleResult struct {
	Active bool
}

// Tokens collects an issued access token.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}

// User is an account; every user is also a channel others can subscribe to.
type User struct {
	ID        uuid.UUID
	Username  string // unique
	PwdHash   string // encoded argon2id
	CreatedAt time.Time
}

// Channel is the public view of a user.
type Channel struct {
	ID       uuid.UUID
	Username string
}

// Video is an uploaded media item. OwnerID never changes after creation.
type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	MediaRef     string // opaque reference from the media store
	ThumbnailRef string
	Duration     int64 // seconds
	IsPublished  bool
	CreatedAt    time.Time
}

// VideoPatch holds optional video updates; nil or empty fields keep stored values.
type VideoPatch struct {
	Title        *string
	Description  *string
	ThumbnailRef *string
}

// Comment belongs to exactly one video.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Tweet is a short text post.
type Tweet struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Playlist is an ordered sequence of videos; duplicates are allowed.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Videos      []uuid.UUID
	CreatedAt   time.Time
}
