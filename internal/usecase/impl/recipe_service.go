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

// recipeService implements the RecipeUsecase interface. It owns the
// denormalized read models: summaries, details and profile views are
// assembled here from the per-concern repositories.
type recipeService struct {
	recipeRepo       repository.RecipeRepository
	ratingRepo       repository.RatingRepository
	favoriteRepo     repository.FavoriteRepository
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo       repository.RecipeRepository
	RatingRepo       repository.RatingRepository
	FavoriteRepo     repository.FavoriteRepository
	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo:       params.RecipeRepo,
		ratingRepo:       params.RatingRepo,
		favoriteRepo:     params.FavoriteRepo,
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new recipe. Muted and banned groups cannot publish.
func (srv *recipeService) Create(ctx context.Context, input usecase.CreateRecipeInput) (*usecase.RecipeDetail, error) {
	author, err := srv.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("publishing user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load recipe author")
	}
	if !author.Group.CanPublish() {
		return nil, domainerrors.ErrForbidden.WrapMessage("this account cannot publish recipes")
	}

	if input.Difficulty < 1 || input.Difficulty > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("difficulty must be between 1 and 5")
	}
	if input.Portions < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("portions must be at least 1")
	}

	recipe := &entity.Recipe{
		AuthorID:    input.AuthorID,
		Name:        input.Name,
		IsPublic:    input.IsPublic,
		Difficulty:  input.Difficulty,
		Portions:    input.Portions,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		Ingredients: input.Ingredients,
		Utensils:    input.Utensils,
		Steps:       input.Steps,
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Info("Recipe published", slog.Any("recipeID", recipe.ID), slog.Any("authorID", recipe.AuthorID))

	return srv.assembleDetail(ctx, recipe, author, &input.AuthorID)
}

// Update replaces a recipe's body. Only the author may edit; the author
// reference itself never changes.
func (srv *recipeService) Update(ctx context.Context, input usecase.UpdateRecipeInput) (*usecase.RecipeDetail, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, input.RecipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("cannot edit a recipe that does not exist")
		}

		return nil, errors.Wrap(err, "failed to load recipe for editing")
	}

	if recipe.AuthorID != input.ActorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the author may edit a recipe")
	}

	if input.Difficulty < 1 || input.Difficulty > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("difficulty must be between 1 and 5")
	}
	if input.Portions < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("portions must be at least 1")
	}

	recipe.Name = input.Name
	recipe.IsPublic = input.IsPublic
	recipe.Difficulty = input.Difficulty
	recipe.Portions = input.Portions
	recipe.ImageURL = input.ImageURL
	recipe.CategoryID = input.CategoryID
	recipe.Ingredients = input.Ingredients
	recipe.Utensils = input.Utensils
	recipe.Steps = input.Steps

	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to update recipe", slog.Any("recipeID", recipe.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	author, err := srv.userRepo.FindByID(ctx, recipe.AuthorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipe author")
	}

	srv.log(ctx).Info("Recipe updated", slog.Any("recipeID", recipe.ID))

	return srv.assembleDetail(ctx, recipe, author, &input.ActorID)
}

// Delete removes a recipe. Only the author or an admin may delete it.
func (srv *recipeService) Delete(ctx context.Context, actorID, recipeID uuid.UUID) error {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound.WrapMessage("cannot delete a recipe that does not exist")
		}

		return errors.Wrap(err, "failed to load recipe for deletion")
	}

	if recipe.AuthorID != actorID {
		actor, err := srv.userRepo.FindByID(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to load acting user for deletion")
		}
		if !actor.Group.IsAdmin() {
			return domainerrors.ErrForbidden.WrapMessage("only the author or an admin may delete a recipe")
		}
	}

	if err := srv.recipeRepo.Delete(ctx, recipeID); err != nil {
		srv.log(ctx).Error("Failed to delete recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Any("recipeID", recipeID), slog.Any("actorID", actorID))

	return nil
}

// Rate records the user's score and returns the recipe's new average.
// Re-rating replaces the previous score.
func (srv *recipeService) Rate(ctx context.Context, input usecase.RateRecipeInput) (*usecase.RateRecipeOutput, error) {
	if input.Score < entity.MinScore || input.Score > entity.MaxScore {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("score must be between 0 and 5")
	}

	if _, err := srv.recipeRepo.FindByID(ctx, input.RecipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("cannot rate a recipe that does not exist")
		}

		return nil, errors.Wrap(err, "failed to load recipe for rating")
	}

	rating := &entity.Rating{
		UserID:   input.UserID,
		RecipeID: input.RecipeID,
		Score:    input.Score,
	}
	if err := srv.ratingRepo.Rate(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to record rating")
	}

	average, err := srv.ratingRepo.AverageForRecipe(ctx, input.RecipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average after rating")
	}

	srv.log(ctx).Debug("Recipe rated", slog.Any("recipeID", input.RecipeID), slog.Int("score", input.Score))

	return &usecase.RateRecipeOutput{AverageRating: average}, nil
}

// Ingredients returns the ordered ingredient lines of a recipe.
func (srv *recipeService) Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error) {
	lines, err := srv.recipeRepo.Ingredients(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe has no ingredient list")
		}

		return nil, errors.Wrap(err, "failed to load ingredients")
	}

	return lines, nil
}

// UserRecipes returns the calling user's own recipes as summaries computed
// for that same user as viewer.
func (srv *recipeService) UserRecipes(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeSummary, error) {
	author, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("requesting user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for recipe listing")
	}

	recipes, err := srv.recipeRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user recipes")
	}

	summaries := make([]*usecase.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summary, err := srv.assembleSummary(ctx, recipe, author, &userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Favorites returns the user's favorited recipes as summaries, newest
// favorite first. A favorite whose recipe has since been deleted is
// dropped rather than failing the whole listing.
func (srv *recipeService) Favorites(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeSummary, error) {
	recipeIDs, err := srv.favoriteRepo.FindRecipeIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorited recipes")
	}

	authors := make(map[uuid.UUID]*entity.User)
	summaries := make([]*usecase.RecipeSummary, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load favorited recipe")
		}

		author, ok := authors[recipe.AuthorID]
		if !ok {
			author, err = srv.userRepo.FindByID(ctx, recipe.AuthorID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load favorited recipe author")
			}
			authors[recipe.AuthorID] = author
		}

		summary, err := srv.assembleSummary(ctx, recipe, author, &userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Detail assembles the full read model for one recipe.
func (srv *recipeService) Detail(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) (*usecase.RecipeDetail, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe detail requested for missing recipe")
		}

		return nil, errors.Wrap(err, "failed to load recipe detail")
	}

	// Private recipes are only visible to their author.
	if !recipe.IsPublic && (viewerID == nil || *viewerID != recipe.AuthorID) {
		return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe detail requested for missing recipe")
	}

	author, err := srv.userRepo.FindByID(ctx, recipe.AuthorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipe author")
	}

	return srv.assembleDetail(ctx, recipe, author, viewerID)
}

// Profile assembles the read model for a user's profile page. Every recipe
// on the page is a nested summary computed for the same viewer.
func (srv *recipeService) Profile(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID) (*usecase.ProfileView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("profile requested for missing user")
		}

		return nil, errors.Wrap(err, "failed to load profile user")
	}

	subscribers, err := srv.subscriptionRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	ranking, err := srv.ratingRepo.AverageForAuthor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute author ranking")
	}

	isSubscribed := false
	if viewerID != nil && *viewerID != userID {
		_, err := srv.subscriptionRepo.FindBySubscriberAndTarget(ctx, *viewerID, userID)
		switch {
		case err == nil:
			isSubscribed = true
		case errors.Is(err, repository.ErrSubscriptionNotFound):
			// viewer does not follow this user
		default:
			return nil, errors.Wrap(err, "failed to check viewer subscription")
		}
	}

	recipes, err := srv.recipeRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile recipes")
	}

	summaries := make([]*usecase.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		// Private recipes stay off everyone else's profile page.
		if !recipe.IsPublic && (viewerID == nil || *viewerID != userID) {
			continue
		}
		summary, err := srv.assembleSummary(ctx, recipe, user, viewerID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return &usecase.ProfileView{
		UserID:       user.ID,
		Username:     user.Username,
		FullName:     user.FullName(),
		AvatarURL:    user.AvatarURL,
		IsChef:       user.Group.IsChef(),
		IsAdmin:      user.Group.IsAdmin(),
		Subscribers:  subscribers,
		IsSubscribed: isSubscribed,
		Ranking:      ranking,
		Recipes:      summaries,
	}, nil
}

// assembleSummary builds the denormalized card for one (viewer, recipe)
// pair. The average stays nil for unrated recipes; the favorite flag is
// false for anonymous viewers.
func (srv *recipeService) assembleSummary(ctx context.Context, recipe *entity.Recipe, author *entity.User, viewerID *uuid.UUID) (*usecase.RecipeSummary, error) {
	average, err := srv.ratingRepo.AverageForRecipe(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	favorites, err := srv.favoriteRepo.CountForRecipe(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count favorites")
	}

	isFavorite := false
	if viewerID != nil {
		_, err := srv.favoriteRepo.FindByUserAndRecipe(ctx, *viewerID, recipe.ID)
		switch {
		case err == nil:
			isFavorite = true
		case errors.Is(err, repository.ErrFavoriteNotFound):
			// viewer has not favorited this recipe
		default:
			return nil, errors.Wrap(err, "failed to check viewer favorite")
		}
	}

	return &usecase.RecipeSummary{
		RecipeID:        recipe.ID,
		RecipeName:      recipe.Name,
		AuthorNick:      author.Username,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
		AverageRating:   average,
		Favorites:       favorites,
		IsFavorite:      isFavorite,
	}, nil
}

// assembleDetail extends the summary with the full recipe body and the
// viewer's own score, nil for anonymous or non-rating viewers.
func (srv *recipeService) assembleDetail(ctx context.Context, recipe *entity.Recipe, author *entity.User, viewerID *uuid.UUID) (*usecase.RecipeDetail, error) {
	summary, err := srv.assembleSummary(ctx, recipe, author, viewerID)
	if err != nil {
		return nil, err
	}

	var viewerScore *int
	if viewerID != nil {
		rating, err := srv.ratingRepo.FindByUserAndRecipe(ctx, *viewerID, recipe.ID)
		switch {
		case err == nil:
			viewerScore = &rating.Score
		case errors.Is(err, repository.ErrRatingNotFound):
			// viewer has not rated this recipe
		default:
			return nil, errors.Wrap(err, "failed to load viewer rating")
		}
	}

	return &usecase.RecipeDetail{
		RecipeSummary: *summary,
		Difficulty:    recipe.Difficulty,
		Portions:      recipe.Portions,
		IsPublic:      recipe.IsPublic,
		ImageURL:      recipe.ImageURL,
		CategoryID:    recipe.CategoryID,
		IsAuthor:      viewerID != nil && *viewerID == recipe.AuthorID,
		ViewerScore:   viewerScore,
		Ingredients:   recipe.Ingredients,
		Utensils:      recipe.Utensils,
		Steps:         recipe.Steps,
	}, nil
}
