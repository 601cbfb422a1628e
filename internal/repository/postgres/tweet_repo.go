package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

const tweetCols = `id, author_id, text, created_at`

// TweetRepo implements TweetRepository using PostgreSQL.
type TweetRepo struct{ db *DB }

// NewTweetRepo constructs a tweet repository.
func NewTweetRepo(db *DB) *TweetRepo { return &TweetRepo{db: db} }

func scanTweet(s rowScanner) (model.Tweet, error) {
	var t model.Tweet
	err := s.Scan(&t.ID, &t.AuthorID, &t.Text, &t.CreatedAt)
	return t, err
}

// Create inserts t and fills CreatedAt.
func (r *TweetRepo) Create(ctx context.Context, t *model.Tweet) error {
	const q = `INSERT INTO tweets (id, author_id, text) VALUES ($1, $2, $3) RETURNING created_at`
	return mapErr(r.db.Pool.QueryRow(ctx, q, t.ID, t.AuthorID, t.Text).Scan(&t.CreatedAt))
}

// Get selects a tweet by ID.
func (r *TweetRepo) Get(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	t, err := scanTweet(r.db.Pool.QueryRow(ctx, `SELECT `+tweetCols+` FROM tweets WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// ListByAuthor returns the author's tweets, newest first.
func (r *TweetRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Tweet, error) {
	const q = `SELECT ` + tweetCols + ` FROM tweets WHERE author_id=$1 ORDER BY created_at DESC, id ASC`
	rows, err := r.db.Pool.Query(ctx, q, authorID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTweet)
}

// UpdateText replaces the tweet text and returns the updated row.
func (r *TweetRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*model.Tweet, error) {
	const q = `UPDATE tweets SET text=$2 WHERE id=$1 RETURNING ` + tweetCols
	t, err := scanTweet(r.db.Pool.QueryRow(ctx, q, id, text))
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// Delete removes a tweet.
func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM tweets WHERE id=$1`, id)
}
