package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// EdgeRepository stores like and subscription edges. Every method is a single
// atomic statement; uniqueness of (subject, object, kind) is enforced by the store.
type EdgeRepository interface {
	// Insert stores e. An existing edge for the same tuple yields errs.ErrConflict.
	Insert(ctx context.Context, e *model.Edge) error
	// Find returns the edge for the tuple or errs.ErrNotFound.
	Find(ctx context.Context, subjectID, objectID uuid.UUID, kind model.ObjectKind) (*model.Edge, error)
	// Delete removes the edge by ID; errs.ErrNotFound if it is already gone.
	Delete(ctx context.Context, id uuid.UUID) error
}
