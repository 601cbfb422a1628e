package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/ident"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// SubscriptionService toggles channel subscriptions and lists them.
type SubscriptionService interface {
	// Toggle subscribes actor to the channel, or unsubscribes if already subscribed.
	Toggle(ctx context.Context, actor uuid.UUID, channelRef string) (model.ToggleResult, error)
	// Subscribers lists channels subscribed to channelRef.
	Subscribers(ctx context.Context, channelRef string) ([]model.Channel, error)
	// SubscribedChannels lists channels subscriberRef is subscribed to.
	SubscribedChannels(ctx context.Context, subscriberRef string) ([]model.Channel, error)
}

type SubscriptionServiceImpl struct {
	toggler *Toggler
	users   repository.UserRepository
}

// NewSubscriptionService constructs SubscriptionService.
func NewSubscriptionService(toggler *Toggler, users repository.UserRepository) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{toggler: toggler, users: users}
}

func (s *SubscriptionServiceImpl) Toggle(ctx context.Context, actor uuid.UUID, channelRef string) (model.ToggleResult, error) {
	channel, err := ident.Parse("channelId", channelRef)
	if err != nil {
		return model.ToggleResult{}, err
	}
	if err := requireActor(actor); err != nil {
		return model.ToggleResult{}, err
	}
	if err := s.mustExist(ctx, "subscriber", actor); err != nil {
		return model.ToggleResult{}, err
	}
	if err := s.mustExist(ctx, "channel", channel); err != nil {
		return model.ToggleResult{}, err
	}
	return s.toggler.Toggle(ctx, actor, channel, model.KindChannel)
}

func (s *SubscriptionServiceImpl) Subscribers(ctx context.Context, channelRef string) ([]model.Channel, error) {
	channel, err := ident.Parse("channelId", channelRef)
	if err != nil {
		return nil, err
	}
	return s.users.ListSubscribers(ctx, channel)
}

func (s *SubscriptionServiceImpl) SubscribedChannels(ctx context.Context, subscriberRef string) ([]model.Channel, error) {
	subscriber, err := ident.Parse("subscriberId", subscriberRef)
	if err != nil {
		return nil, err
	}
	return s.users.ListSubscriptions(ctx, subscriber)
}

func (s *SubscriptionServiceImpl) mustExist(ctx context.Context, kind string, id uuid.UUID) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NotFound(kind, id)
	}
	return nil
}
