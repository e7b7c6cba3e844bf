package postgres

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindBySubscriberAndTarget retrieves the edge for an exact ordered
// (subscriber, subscribed) pair.
func (repo *subscriptionRepository) FindBySubscriberAndTarget(ctx context.Context, subscriberID, subscribedID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND subscribed_id = ?", subscriberID, subscribedID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// CountForUser returns the number of subscribers a user has.
func (repo *subscriptionRepository) CountForUser(ctx context.Context, subscribedID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscribed_id = ?", subscribedID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return count, nil
}

// FindTargetsBySubscriber retrieves the IDs of the users a subscriber follows,
// newest edge first.
func (repo *subscriptionRepository) FindTargetsBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error) {
	var targetIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Pluck("subscribed_id", &targetIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscription targets")
	}

	return targetIDs, nil
}

// Create persists a new subscription edge. The (subscriber_id, subscribed_id)
// unique index rejects a second edge for the same ordered pair; callers treat
// ErrDuplicateSubscription as "already subscribed".
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreFailureError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// Delete removes a subscription edge by its own identity.
func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})
	if result.Error != nil {
		return domainerrors.NewStoreFailureError(result.Error, "failed to delete subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		SubscribedID: data.SubscribedID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		SubscribedID: data.SubscribedID,
	}
}
