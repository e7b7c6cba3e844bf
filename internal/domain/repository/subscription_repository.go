// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription edge is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when a subscription edge for the
	// same ordered (subscriber, subscribed) pair already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the standard operations for subscription edges.
type SubscriptionRepository interface {
	// FindBySubscriberAndTarget retrieves the edge for an exact ordered
	// (subscriber, subscribed) pair. Returns ErrSubscriptionNotFound when absent.
	FindBySubscriberAndTarget(ctx context.Context, subscriberID, subscribedID uuid.UUID) (*entity.Subscription, error)

	// CountForUser returns the number of subscribers a user has.
	CountForUser(ctx context.Context, subscribedID uuid.UUID) (int64, error)

	// FindTargetsBySubscriber retrieves the IDs of the users a subscriber
	// follows, newest edge first.
	FindTargetsBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error)

	// Create persists a new subscription edge. Returns
	// ErrDuplicateSubscription when the pair's unique constraint is violated.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes a subscription edge by its own identity.
	Delete(ctx context.Context, id uuid.UUID) error
}
