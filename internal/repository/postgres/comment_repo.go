package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/discovery"
	"github.com/and161185/vidshare/internal/model"
)

const commentCols = `id, video_id, author_id, text, created_at`

// CommentRepo implements CommentRepository using PostgreSQL.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

func scanComment(s rowScanner) (model.Comment, error) {
	var c model.Comment
	err := s.Scan(&c.ID, &c.VideoID, &c.AuthorID, &c.Text, &c.CreatedAt)
	return c, err
}

// Create inserts c and fills CreatedAt.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (id, video_id, author_id, text)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	return mapErr(r.db.Pool.QueryRow(ctx, q, c.ID, c.VideoID, c.AuthorID, c.Text).Scan(&c.CreatedAt))
}

// Get selects a comment by ID.
func (r *CommentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := scanComment(r.db.Pool.QueryRow(ctx, `SELECT `+commentCols+` FROM comments WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// UpdateText replaces the comment text and returns the updated row.
func (r *CommentRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*model.Comment, error) {
	const q = `UPDATE comments SET text=$2 WHERE id=$1 RETURNING ` + commentCols
	c, err := scanComment(r.db.Pool.QueryRow(ctx, q, id, text))
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM comments WHERE id=$1`, id)
}

func commentWhere(f discovery.Filter) *where {
	w := &where{}
	if f.VideoID != uuid.Nil {
		w.and("video_id = " + w.arg(f.VideoID))
	}
	if f.Text != "" {
		w.and("text ILIKE " + w.arg(containsPattern(f.Text)))
	}
	return w
}

// Scan returns one page of comments matching d.
func (r *CommentRepo) Scan(ctx context.Context, d discovery.Descriptor) ([]model.Comment, error) {
	order, err := orderBy(commentSortColumns, d)
	if err != nil {
		return nil, err
	}
	w := commentWhere(d.Filter)
	q := `SELECT ` + commentCols + ` FROM comments` + w.String() + order
	q += w.page(d)

	rows, err := r.db.Pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanComment)
}

// Count returns the number of comments matching f.
func (r *CommentRepo) Count(ctx context.Context, f discovery.Filter) (int64, error) {
	w := commentWhere(f)
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM comments`+w.String(), w.args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
