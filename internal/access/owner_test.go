package access

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/and161185/vidshare/internal/errs"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	require.NoError(t, Authorize(owner, owner))
	require.ErrorIs(t, Authorize(other, owner), errs.ErrForbidden)
	require.ErrorIs(t, Authorize(uuid.Nil, uuid.Nil), errs.ErrForbidden)
}
