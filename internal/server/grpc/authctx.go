package grpcserver

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type actorKey struct{}

// ContextWithActor returns ctx carrying the verified caller. uuid.Nil leaves ctx anonymous.
func ContextWithActor(ctx context.Context, id uuid.UUID) context.Context {
	if id == uuid.Nil {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFromContext returns the verified caller; ok is false on anonymous calls.
func ActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok
}

// actor is the caller or uuid.Nil. Services reject Nil where an identity is required.
func actor(ctx context.Context) uuid.UUID {
	id, _ := ActorFromContext(ctx)
	return id
}
