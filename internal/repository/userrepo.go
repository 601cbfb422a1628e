// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/model"
)

// UserRepository provides access to accounts and their channel view.
type UserRepository interface {
	// Create inserts a new user. A taken username yields errs.ErrConflict.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// Exists reports whether a user with id is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// ListSubscribers returns channels subscribed to channelID.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]model.Channel, error)
	// ListSubscriptions returns channels subscriberID is subscribed to.
	ListSubscriptions(ctx context.Context, subscriberID uuid.UUID) ([]model.Channel, error)
}
