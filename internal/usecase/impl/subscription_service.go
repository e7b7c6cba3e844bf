package impl

import (
	"context"
	"log/slog"

	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveTarget turns a username into the target user, surfacing unknown
// names as the user-not-found application error.
func (srv *subscriptionService) resolveTarget(ctx context.Context, username string) (*entity.User, error) {
	target, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("subscription target not found")
		}

		return nil, errors.Wrap(err, "failed to resolve subscription target")
	}

	return target, nil
}

// Subscribe creates the follow edge from subscriber to the named user.
// An edge that already exists, whether found by lookup or raced into
// existence by the unique constraint, is reported as already-subscribed
// rather than as an error.
func (srv *subscriptionService) Subscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) (*usecase.SubscribeOutput, error) {
	target, err := srv.resolveTarget(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	if target.ID == subscriberID {
		return nil, domainerrors.ErrSelfSubscription.WrapMessage("subscriber and target are the same user")
	}

	_, err = srv.subscriptionRepo.FindBySubscriberAndTarget(ctx, subscriberID, target.ID)
	switch {
	case err == nil:
		srv.log(ctx).Debug("Subscription already present", slog.Any("subscriberID", subscriberID), slog.Any("targetID", target.ID))

		return &usecase.SubscribeOutput{AlreadySubscribed: true}, nil
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		// fall through to create
	default:
		return nil, errors.Wrap(err, "failed to look up subscription edge")
	}

	edge := &entity.Subscription{
		SubscriberID: subscriberID,
		SubscribedID: target.ID,
	}

	if err := srv.subscriptionRepo.Create(ctx, edge); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscription) {
			srv.log(ctx).Debug("Subscription edge raced into existence", slog.Any("subscriberID", subscriberID), slog.Any("targetID", target.ID))

			return &usecase.SubscribeOutput{AlreadySubscribed: true}, nil
		}

		return nil, errors.Wrap(err, "failed to create subscription edge")
	}

	srv.log(ctx).Debug("Subscription created", slog.Any("subscriberID", subscriberID), slog.Any("targetID", target.ID))

	return &usecase.SubscribeOutput{AlreadySubscribed: false}, nil
}

// Unsubscribe removes the follow edge to the named user. A missing edge is
// a distinct no-op outcome: ErrSubscriptionNotFound, not a silent success
// and not a generic failure.
func (srv *subscriptionService) Unsubscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) error {
	target, err := srv.resolveTarget(ctx, targetUsername)
	if err != nil {
		return err
	}

	edge, err := srv.subscriptionRepo.FindBySubscriberAndTarget(ctx, subscriberID, target.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound.WrapMessage("no subscription to remove")
		}

		return errors.Wrap(err, "failed to look up subscription edge")
	}

	if err := srv.subscriptionRepo.Delete(ctx, edge.ID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			// Deleted underneath us; the desired end state holds.
			return domainerrors.ErrSubscriptionNotFound.WrapMessage("no subscription to remove")
		}

		return errors.Wrap(err, "failed to delete subscription edge")
	}

	srv.log(ctx).Debug("Subscription removed", slog.Any("subscriberID", subscriberID), slog.Any("targetID", target.ID))

	return nil
}

// Subscriptions lists the users the subscriber follows. A target whose
// account vanished between edge and lookup is dropped from the listing.
func (srv *subscriptionService) Subscriptions(ctx context.Context, subscriberID uuid.UUID) ([]*usecase.SubscriptionInfo, error) {
	targetIDs, err := srv.subscriptionRepo.FindTargetsBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription targets")
	}

	infos := make([]*usecase.SubscriptionInfo, 0, len(targetIDs))
	for _, targetID := range targetIDs {
		target, err := srv.userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load subscription target")
		}

		infos = append(infos, &usecase.SubscriptionInfo{
			UserID:    target.ID,
			Username:  target.Username,
			FullName:  target.FullName(),
			AvatarURL: target.AvatarURL,
		})
	}

	return infos, nil
}
