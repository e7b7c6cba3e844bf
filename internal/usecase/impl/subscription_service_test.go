package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/mocks"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(subscriptionRepo *mocks.SubscriptionRepository, userRepo *mocks.UserRepository) *subscriptionService {
	return NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		UserRepo:         userRepo,
		Logger:           testLogger(),
	}).(*subscriptionService)
}

func TestSubscribe_CreatesEdge(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	target := &entity.User{ID: uuid.New(), Username: "chef_anna"}

	userRepo.On("FindByUsername", mock.Anything, "chef_anna").Return(target, nil)
	subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, subscriberID, target.ID).
		Return(nil, repository.ErrSubscriptionNotFound)
	subscriptionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
		return s.SubscriberID == subscriberID && s.SubscribedID == target.ID
	})).Return(nil)

	out, err := srv.Subscribe(context.Background(), subscriberID, "chef_anna")

	require.NoError(t, err)
	assert.False(t, out.AlreadySubscribed)
	subscriptionRepo.AssertExpectations(t)
}

func TestSubscribe_AlreadySubscribedIsNotAnError(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	target := &entity.User{ID: uuid.New(), Username: "chef_anna"}

	userRepo.On("FindByUsername", mock.Anything, "chef_anna").Return(target, nil)
	subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, subscriberID, target.ID).
		Return(&entity.Subscription{ID: uuid.New(), SubscriberID: subscriberID, SubscribedID: target.ID}, nil)

	out, err := srv.Subscribe(context.Background(), subscriberID, "chef_anna")

	require.NoError(t, err)
	assert.True(t, out.AlreadySubscribed)
	subscriptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribe_DuplicateCreateReportsAlreadySubscribed(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	target := &entity.User{ID: uuid.New(), Username: "chef_anna"}

	userRepo.On("FindByUsername", mock.Anything, "chef_anna").Return(target, nil)
	subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, subscriberID, target.ID).
		Return(nil, repository.ErrSubscriptionNotFound)
	subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).
		Return(repository.ErrDuplicateSubscription)

	out, err := srv.Subscribe(context.Background(), subscriberID, "chef_anna")

	require.NoError(t, err)
	assert.True(t, out.AlreadySubscribed)
}

func TestSubscribe_UnknownUsername(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	out, err := srv.Subscribe(context.Background(), uuid.New(), "ghost")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestSubscribe_SelfSubscriptionRejected(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	self := &entity.User{ID: uuid.New(), Username: "me"}
	userRepo.On("FindByUsername", mock.Anything, "me").Return(self, nil)

	out, err := srv.Subscribe(context.Background(), self.ID, "me")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfSubscription))
	subscriptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnsubscribe_RemovesEdge(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	target := &entity.User{ID: uuid.New(), Username: "chef_anna"}
	edgeID := uuid.New()

	userRepo.On("FindByUsername", mock.Anything, "chef_anna").Return(target, nil)
	subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, subscriberID, target.ID).
		Return(&entity.Subscription{ID: edgeID, SubscriberID: subscriberID, SubscribedID: target.ID}, nil)
	subscriptionRepo.On("Delete", mock.Anything, edgeID).Return(nil)

	err := srv.Unsubscribe(context.Background(), subscriberID, "chef_anna")

	require.NoError(t, err)
	subscriptionRepo.AssertExpectations(t)
}

// Removing a subscription that does not exist is a distinct outcome, not a
// silent success: the caller gets ErrSubscriptionNotFound and can report
// the no-op.
func TestUnsubscribe_MissingEdgeIsDistinctNoOp(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	target := &entity.User{ID: uuid.New(), Username: "chef_anna"}

	userRepo.On("FindByUsername", mock.Anything, "chef_anna").Return(target, nil)
	subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, subscriberID, target.ID).
		Return(nil, repository.ErrSubscriptionNotFound)

	err := srv.Unsubscribe(context.Background(), subscriberID, "chef_anna")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
	subscriptionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnsubscribe_UnknownUsername(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	err := srv.Unsubscribe(context.Background(), uuid.New(), "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

// The subscription list resolves each followed user; a target whose account
// vanished is dropped instead of failing the listing.
func TestSubscriptions_ListsTargets(t *testing.T) {
	subscriptionRepo := new(mocks.SubscriptionRepository)
	userRepo := new(mocks.UserRepository)
	srv := newSubscriptionService(subscriptionRepo, userRepo)

	subscriberID := uuid.New()
	anna := &entity.User{ID: uuid.New(), Username: "chef_anna", FirstName: "Anna", LastName: "Svensson"}
	vanishedID := uuid.New()

	subscriptionRepo.On("FindTargetsBySubscriber", mock.Anything, subscriberID).
		Return([]uuid.UUID{anna.ID, vanishedID}, nil)
	userRepo.On("FindByID", mock.Anything, anna.ID).Return(anna, nil)
	userRepo.On("FindByID", mock.Anything, vanishedID).Return(nil, repository.ErrUserNotFound)

	infos, err := srv.Subscriptions(context.Background(), subscriberID)

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "chef_anna", infos[0].Username)
	assert.Equal(t, "Anna Svensson", infos[0].FullName)
}
