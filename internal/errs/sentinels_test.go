package errs

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestFieldError_UnwrapsToSentinel(t *testing.T) {
	err := InvalidReference("video_id", "nope")
	require.ErrorIs(t, err, ErrInvalidReference)
	require.NotErrorIs(t, err, ErrInvalidParameter)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "video_id", fe.Field)
	require.Equal(t, "nope", fe.Value)
	require.Equal(t, `video_id "nope": invalid reference`, err.Error())
}

func TestInvalidParameter(t *testing.T) {
	err := InvalidParameter("page", "0")
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNotFound_MentionsEntity(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	err := NotFound("video", id)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), id.String())
	require.Contains(t, err.Error(), "video")
}
