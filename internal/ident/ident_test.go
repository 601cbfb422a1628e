package ident

import (
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/and161185/vidshare/internal/errs"
)

func TestParse_OK(t *testing.T) {
	want := uuid.Must(uuid.NewV4())

	got, err := Parse("video_id", want.String())
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = Parse("video_id", "  "+strings.ToUpper(want.String())+" ")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParse_Rejects(t *testing.T) {
	for _, ref := range []string{"", "not-an-id", "123", uuid.Nil.String(), "64b7f0c2e4b0a1a2b3c4d5e6"} {
		_, err := Parse("video_id", ref)
		require.ErrorIs(t, err, errs.ErrInvalidReference, "ref=%q", ref)

		var fe *errs.FieldError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, "video_id", fe.Field)
	}
}

func TestValid(t *testing.T) {
	require.True(t, Valid(uuid.Must(uuid.NewV4()).String()))
	require.False(t, Valid("nope"))
}
