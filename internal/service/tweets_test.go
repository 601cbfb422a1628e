package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
)

func TestTweets_Create(t *testing.T) {
	t.Parallel()
	author := newID()
	tweets := newFakeTweets()
	s := NewTweetService(tweets, newFakeUsers(author))
	ctx := context.Background()

	_, err := s.Create(ctx, uuid.Nil, "x")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = s.Create(ctx, author, "   ")
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = s.Create(ctx, newID(), "hello")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Zero(t, tweets.calls)

	tw, err := s.Create(ctx, author, "hello")
	require.NoError(t, err)
	require.Equal(t, author, tw.AuthorID)

	list, err := s.ListByUser(ctx, author.String())
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = s.ListByUser(ctx, "nope")
	require.ErrorIs(t, err, errs.ErrInvalidReference)
}

func TestTweets_OwnershipGuard(t *testing.T) {
	t.Parallel()
	author, stranger := newID(), newID()
	tw := model.Tweet{ID: newID(), AuthorID: author, Text: "v1"}
	tweets := newFakeTweets(tw)
	s := NewTweetService(tweets, newFakeUsers(author, stranger))
	ctx := context.Background()

	_, err := s.Update(ctx, stranger, tw.ID.String(), "x")
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.ErrorIs(t, s.Delete(ctx, stranger, tw.ID.String()), errs.ErrForbidden)
	require.Equal(t, "v1", tweets.byID[tw.ID].Text)

	got, err := s.Update(ctx, author, tw.ID.String(), "v2")
	require.NoError(t, err)
	require.Equal(t, "v2", got.Text)
	require.NoError(t, s.Delete(ctx, author, tw.ID.String()))
}

func TestTweets_InvalidReferenceBeforeStore(t *testing.T) {
	t.Parallel()
	tweets := newFakeTweets()
	s := NewTweetService(tweets, newFakeUsers())

	_, err := s.Update(context.Background(), newID(), "bad", "x")
	require.ErrorIs(t, err, errs.ErrInvalidReference)
	require.ErrorIs(t, s.Delete(context.Background(), newID(), "bad"), errs.ErrInvalidReference)
	require.Zero(t, tweets.calls)
}
