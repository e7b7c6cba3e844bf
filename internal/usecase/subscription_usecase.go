package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubscribeOutput reports the result of a subscription attempt.
// AlreadySubscribed distinguishes "edge just created" from "edge was
// already there"; both leave the store in the same desired state.
type SubscribeOutput struct {
	AlreadySubscribed bool
}

// SubscriptionInfo describes one user on the subscriber's subscription list.
type SubscriptionInfo struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
}

// SubscriptionUsecase defines the interface for managing the directed
// follow edges between users. Targets are addressed by username, the way
// the API exposes them.
type SubscriptionUsecase interface {
	// Subscribe creates a follow edge from the subscriber to the user with
	// the given username. Subscribing to an already-followed user is not an
	// error; the output reports the pre-existing edge.
	Subscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) (*SubscribeOutput, error)

	// Unsubscribe removes the follow edge to the user with the given
	// username. Removing an edge that does not exist returns
	// ErrSubscriptionNotFound so callers can report the no-op distinctly.
	Unsubscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) error

	// Subscriptions lists the users the subscriber follows, newest edge
	// first.
	Subscriptions(ctx context.Context, subscriberID uuid.UUID) ([]*SubscriptionInfo, error)
}
