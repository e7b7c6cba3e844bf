package mocks

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SubscriptionRepository is a mock implementation of repository.SubscriptionRepository.
type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) FindBySubscriberAndTarget(ctx context.Context, subscriberID, subscribedID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, subscriberID, subscribedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *SubscriptionRepository) CountForUser(ctx context.Context, subscribedID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subscribedID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *SubscriptionRepository) FindTargetsBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *SubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	args := m.Called(ctx, subscription)

	return args.Error(0)
}

func (m *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
