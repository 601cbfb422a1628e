package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
)

// PlaylistRepo implements PlaylistRepository using PostgreSQL. Membership
// lives in playlist_videos ordered by its serial position.
type PlaylistRepo struct{ db *DB }

// NewPlaylistRepo constructs a playlist repository.
func NewPlaylistRepo(db *DB) *PlaylistRepo { return &PlaylistRepo{db: db} }

// Create inserts p and fills CreatedAt.
func (r *PlaylistRepo) Create(ctx context.Context, p *model.Playlist) error {
	const q = `
INSERT INTO playlists (id, owner_id, name, description)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	return mapErr(r.db.Pool.QueryRow(ctx, q, p.ID, p.OwnerID, p.Name, p.Description).Scan(&p.CreatedAt))
}

// Get loads the playlist and its videos from one snapshot.
func (r *PlaylistRepo) Get(ctx context.Context, id uuid.UUID) (p *model.Playlist, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const sel = `SELECT id, owner_id, name, description, created_at FROM playlists WHERE id=$1`
	const vids = `SELECT video_id FROM playlist_videos WHERE playlist_id=$1 ORDER BY position ASC`

	var pl model.Playlist
	if err = tx.QueryRow(ctx, sel, id).Scan(&pl.ID, &pl.OwnerID, &pl.Name, &pl.Description, &pl.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	rows, err := tx.Query(ctx, vids, id)
	if err != nil {
		return nil, err
	}
	pl.Videos, err = collect(rows, func(s rowScanner) (uuid.UUID, error) {
		var v uuid.UUID
		err := s.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

// ListByOwner returns the owner's playlists, newest first, without membership.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Playlist, error) {
	const q = `
SELECT id, owner_id, name, description, created_at
FROM playlists WHERE owner_id=$1 ORDER BY created_at DESC, id ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s rowScanner) (model.Playlist, error) {
		var p model.Playlist
		err := s.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt)
		return p, err
	})
}

// Update overwrites name and description.
func (r *PlaylistRepo) Update(ctx context.Context, id uuid.UUID, name, description string) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE playlists SET name=$2, description=$3 WHERE id=$1`, id, name, description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a playlist; membership rows cascade.
func (r *PlaylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM playlists WHERE id=$1`, id)
}

// AppendVideo adds videoID at the end. A missing playlist maps to errs.ErrNotFound.
func (r *PlaylistRepo) AppendVideo(ctx context.Context, id, videoID uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)`, id, videoID)
	return mapErr(err)
}

// RemoveVideo drops every occurrence of videoID. Removing an absent video is not an error.
func (r *PlaylistRepo) RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM playlist_videos WHERE playlist_id=$1 AND video_id=$2`, id, videoID)
	return err
}
