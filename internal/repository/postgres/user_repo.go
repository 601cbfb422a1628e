package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row and fills CreatedAt.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username, pwd_hash)
VALUES ($1, $2, $3)
RETURNING created_at`
	return mapErr(r.db.Pool.QueryRow(ctx, q, u.ID, u.Username, u.PwdHash).Scan(&u.CreatedAt))
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `SELECT id, username, pwd_hash, created_at FROM users WHERE id=$1`
	return r.one(ctx, q, id)
}

// GetByUsername selects a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT id, username, pwd_hash, created_at FROM users WHERE username=$1`
	return r.one(ctx, q, username)
}

func (r *UserRepo) one(ctx context.Context, q string, arg any) (*model.User, error) {
	var u model.User
	if err := r.db.Pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Username, &u.PwdHash, &u.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// Exists reports whether a user with id is stored.
func (r *UserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ListSubscribers returns users subscribed to channelID, newest first.
func (r *UserRepo) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]model.Channel, error) {
	const q = `
SELECT u.id, u.username
FROM edges e JOIN users u ON u.id = e.subject_id
WHERE e.object_id=$1 AND e.object_kind=$2
ORDER BY e.created_at DESC, u.id ASC`
	return r.channels(ctx, q, channelID)
}

// ListSubscriptions returns channels subscriberID follows, newest first.
func (r *UserRepo) ListSubscriptions(ctx context.Context, subscriberID uuid.UUID) ([]model.Channel, error) {
	const q = `
SELECT u.id, u.username
FROM edges e JOIN users u ON u.id = e.object_id
WHERE e.subject_id=$1 AND e.object_kind=$2
ORDER BY e.created_at DESC, u.id ASC`
	return r.channels(ctx, q, subscriberID)
}

func (r *UserRepo) channels(ctx context.Context, q string, id uuid.UUID) ([]model.Channel, error) {
	rows, err := r.db.Pool.Query(ctx, q, id, string(model.KindChannel))
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s rowScanner) (model.Channel, error) {
		var c model.Channel
		err := s.Scan(&c.ID, &c.Username)
		return c, err
	})
}
