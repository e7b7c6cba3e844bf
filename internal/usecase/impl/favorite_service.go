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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	RecipeRepo   repository.RecipeRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		recipeRepo:   params.RecipeRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SwitchFavorite flips the favorite edge for the (user, recipe) pair.
// Lookup decides the direction; the store's unique constraint is the
// arbiter when two requests race on the same pair:
//   - create lost the race: the edge exists, which is the state the caller
//     asked for, so report is_favorite=true instead of an error.
//   - delete lost the race: the edge is already gone, so report
//     is_favorite=false.
//
// Either way exactly one write is attempted.
func (srv *favoriteService) SwitchFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*usecase.SwitchFavoriteOutput, error) {
	if _, err := srv.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("cannot favorite a recipe that does not exist")
		}

		return nil, errors.Wrap(err, "failed to load recipe for favorite switch")
	}

	edge, err := srv.favoriteRepo.FindByUserAndRecipe(ctx, userID, recipeID)
	switch {
	case err == nil:
		return srv.switchOff(ctx, edge)
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return srv.switchOn(ctx, userID, recipeID)
	default:
		return nil, errors.Wrap(err, "failed to look up favorite edge")
	}
}

func (srv *favoriteService) switchOn(ctx context.Context, userID, recipeID uuid.UUID) (*usecase.SwitchFavoriteOutput, error) {
	edge := &entity.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}

	if err := srv.favoriteRepo.Create(ctx, edge); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			srv.log(ctx).Debug("Favorite edge raced into existence", slog.Any("userID", userID), slog.Any("recipeID", recipeID))

			return &usecase.SwitchFavoriteOutput{IsFavorite: true}, nil
		}

		return nil, errors.Wrap(err, "failed to create favorite edge")
	}

	srv.log(ctx).Debug("Favorite switched on", slog.Any("userID", userID), slog.Any("recipeID", recipeID))

	return &usecase.SwitchFavoriteOutput{IsFavorite: true}, nil
}

func (srv *favoriteService) switchOff(ctx context.Context, edge *entity.Favorite) (*usecase.SwitchFavoriteOutput, error) {
	if err := srv.favoriteRepo.Delete(ctx, edge.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			srv.log(ctx).Debug("Favorite edge already removed", slog.Any("edgeID", edge.ID))

			return &usecase.SwitchFavoriteOutput{IsFavorite: false}, nil
		}

		return nil, errors.Wrap(err, "failed to delete favorite edge")
	}

	srv.log(ctx).Debug("Favorite switched off", slog.Any("userID", edge.UserID), slog.Any("recipeID", edge.RecipeID))

	return &usecase.SwitchFavoriteOutput{IsFavorite: false}, nil
}
