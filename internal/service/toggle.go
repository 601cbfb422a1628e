package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// Toggler flips the existence of an edge. The store's uniqueness constraint
// on (subject, object, kind) is the only serialization point.
type Toggler struct {
	edges repository.EdgeRepository
}

// NewToggler constructs a Toggler over edges.
func NewToggler(edges repository.EdgeRepository) *Toggler {
	return &Toggler{edges: edges}
}

// Toggle inserts the edge, or removes it if one already exists.
//
// Insert wins → active. Insert conflicts → find and delete by ID → inactive.
// An edge that vanished between the conflict and the delete (a concurrent
// toggle removed it) still reports inactive without error.
func (t *Toggler) Toggle(ctx context.Context, subject, object uuid.UUID, kind model.ObjectKind) (model.ToggleResult, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return model.ToggleResult{}, err
	}
	err = t.edges.Insert(ctx, &model.Edge{ID: id, SubjectID: subject, ObjectID: object, Kind: kind})
	if err == nil {
		return model.ToggleResult{Active: true}, nil
	}
	if !errors.Is(err, errs.ErrConflict) {
		return model.ToggleResult{}, err
	}

	existing, err := t.edges.Find(ctx, subject, object, kind)
	if errors.Is(err, errs.ErrNotFound) {
		return model.ToggleResult{Active: false}, nil
	}
	if err != nil {
		return model.ToggleResult{}, err
	}
	if err := t.edges.Delete(ctx, existing.ID); err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.ToggleResult{}, err
	}
	return model.ToggleResult{Active: false}, nil
}
