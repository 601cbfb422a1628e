package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// EdgeRepo implements EdgeRepository using PostgreSQL. The unique key
// edges_subject_object_kind_key guarantees one edge per tuple.
type EdgeRepo struct{ db *DB }

// NewEdgeRepo constructs an edge repository.
func NewEdgeRepo(db *DB) *EdgeRepo { return &EdgeRepo{db: db} }

// Insert stores e and fills CreatedAt. A duplicate tuple maps to errs.ErrConflict.
func (r *EdgeRepo) Insert(ctx context.Context, e *model.Edge) error {
	const q = `
INSERT INTO edges (id, subject_id, object_id, object_kind)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, e.ID, e.SubjectID, e.ObjectID, string(e.Kind)).Scan(&e.CreatedAt)
	return mapErr(err)
}

// Find selects the edge for a tuple.
func (r *EdgeRepo) Find(ctx context.Context, subjectID, objectID uuid.UUID, kind model.ObjectKind) (*model.Edge, error) {
	const q = `
SELECT id, subject_id, object_id, object_kind, created_at
FROM edges WHERE subject_id=$1 AND object_id=$2 AND object_kind=$3`
	var (
		e model.Edge
		k string
	)
	err := r.db.Pool.QueryRow(ctx, q, subjectID, objectID, string(kind)).
		Scan(&e.ID, &e.SubjectID, &e.ObjectID, &k, &e.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	e.Kind = model.ObjectKind(k)
	return &e, nil
}

// Delete removes the edge by its own ID.
func (r *EdgeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM edges WHERE id=$1`, id)
}
