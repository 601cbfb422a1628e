package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
)

const videoCols = `id, owner_id, title, description, media_ref, thumbnail_ref, duration, is_published, created_at`

// VideoRepo implements VideoRepository using PostgreSQL.
type VideoRepo struct{ db *DB }

// NewVideoRepo constructs a video repository.
func NewVideoRepo(db *DB) *VideoRepo { return &VideoRepo{db: db} }

func scanVideo(s rowScanner) (model.Video, error) {
	var v model.Video
	err := s.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.MediaRef, &v.ThumbnailRef,
		&v.Duration, &v.IsPublished, &v.CreatedAt)
	return v, err
}

// Create inserts v and fills CreatedAt.
func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	const q = `
INSERT INTO videos (id, owner_id, title, description, media_ref, thumbnail_ref, duration, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, v.ID, v.OwnerID, v.Title, v.Description, v.MediaRef,
		v.ThumbnailRef, v.Duration, v.IsPublished).Scan(&v.CreatedAt)
	return mapErr(err)
}

// Get selects a video by ID.
func (r *VideoRepo) Get(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	const q = `SELECT ` + videoCols + ` FROM videos WHERE id=$1`
	v, err := scanVideo(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &v, nil
}

// Update overwrites title, description and thumbnail. Owner is never written.
func (r *VideoRepo) Update(ctx context.Context, v *model.Video) error {
	const q = `UPDATE videos SET title=$2, description=$3, thumbnail_ref=$4 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, v.ID, v.Title, v.Description, v.ThumbnailRef)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a video.
func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM videos WHERE id=$1`, id)
}

// TogglePublished flips is_published atomically.
func (r *VideoRepo) TogglePublished(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	const q = `UPDATE videos SET is_published = NOT is_published WHERE id=$1 RETURNING ` + videoCols
	v, err := scanVideo(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &v, nil
}

// ListLikedBy returns videos userID liked, most recent like first.
func (r *VideoRepo) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	const q = `
SELECT v.id, v.owner_id, v.title, v.description, v.media_ref, v.thumbnail_ref, v.duration, v.is_published, v.created_at
FROM edges e JOIN videos v ON v.id = e.object_id
WHERE e.subject_id=$1 AND e.object_kind=$2
ORDER BY e.created_at DESC, v.id ASC`
	rows, err := r.db.Pool.Query(ctx, q, userID, string(model.KindVideo))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanVideo)
}

func videoWhere(f discovery.Filter) *where {
	w := &where{}
	if f.Text != "" {
		p := w.arg(containsPattern(f.Text))
		w.and("(title ILIKE " + p + " OR description ILIKE " + p + ")")
	}
	if f.OwnerID != uuid.Nil {
		w.and("owner_id = " + w.arg(f.OwnerID))
	}
	return w
}

// Scan returns one page of videos matching d.
func (r *VideoRepo) Scan(ctx context.Context, d discovery.Descriptor) ([]model.Video, error) {
	order, err := orderBy(videoSortColumns, d)
	if err != nil {
		return nil, err
	}
	w := videoWhere(d.Filter)
	q := `SELECT ` + videoCols + ` FROM videos` + w.String() + order
	q += w.page(d)

	rows, err := r.db.Pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanVideo)
}

// Count returns the number of videos matching f.
func (r *VideoRepo) Count(ctx context.Context, f discovery.Filter) (int64, error) {
	w := videoWhere(f)
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM videos`+w.String(), w.args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
