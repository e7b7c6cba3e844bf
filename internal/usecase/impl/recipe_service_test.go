package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/mocks"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceMocks struct {
	recipeRepo       *mocks.RecipeRepository
	ratingRepo       *mocks.RatingRepository
	favoriteRepo     *mocks.FavoriteRepository
	subscriptionRepo *mocks.SubscriptionRepository
	userRepo         *mocks.UserRepository
}

func newRecipeService(t *testing.T) (*recipeService, *recipeServiceMocks) {
	t.Helper()

	deps := &recipeServiceMocks{
		recipeRepo:       new(mocks.RecipeRepository),
		ratingRepo:       new(mocks.RatingRepository),
		favoriteRepo:     new(mocks.FavoriteRepository),
		subscriptionRepo: new(mocks.SubscriptionRepository),
		userRepo:         new(mocks.UserRepository),
	}

	srv := NewRecipeService(RecipeServiceParams{
		RecipeRepo:       deps.recipeRepo,
		RatingRepo:       deps.ratingRepo,
		FavoriteRepo:     deps.favoriteRepo,
		SubscriptionRepo: deps.subscriptionRepo,
		UserRepo:         deps.userRepo,
		Logger:           testLogger(),
	}).(*recipeService)

	return srv, deps
}

func floatPtr(v float64) *float64 { return &v }

// An unrated recipe carries a nil average, never zero. A zero average is a
// real score.
func TestAssembleSummary_NilAverageForUnratedRecipe(t *testing.T) {
	srv, deps := newRecipeService(t)

	author := &entity.User{ID: uuid.New(), Username: "anna", FirstName: "Anna", LastName: "Svensson"}
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar"}

	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipe.ID).Return(nil, nil)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, recipe.ID).Return(int64(0), nil)

	summary, err := srv.assembleSummary(context.Background(), recipe, author, nil)

	require.NoError(t, err)
	assert.Nil(t, summary.AverageRating)
	assert.Equal(t, "anna", summary.AuthorNick)
	assert.False(t, summary.IsFavorite)
}

func TestAssembleSummary_ViewerFavoriteFlag(t *testing.T) {
	srv, deps := newRecipeService(t)

	viewerID := uuid.New()
	author := &entity.User{ID: uuid.New(), Username: "anna"}
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar"}

	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipe.ID).Return(floatPtr(3), nil)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, recipe.ID).Return(int64(7), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, viewerID, recipe.ID).
		Return(&entity.Favorite{ID: uuid.New(), UserID: viewerID, RecipeID: recipe.ID}, nil)

	summary, err := srv.assembleSummary(context.Background(), recipe, author, &viewerID)

	require.NoError(t, err)
	require.NotNil(t, summary.AverageRating)
	assert.Equal(t, 3.0, *summary.AverageRating)
	assert.Equal(t, int64(7), summary.Favorites)
	assert.True(t, summary.IsFavorite)
}

func TestUserRecipes_SummariesForOwnRecipes(t *testing.T) {
	srv, deps := newRecipeService(t)

	author := &entity.User{ID: uuid.New(), Username: "anna"}
	recipes := []*entity.Recipe{
		{ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar"},
		{ID: uuid.New(), AuthorID: author.ID, Name: "Pannkakor"},
	}

	deps.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	deps.recipeRepo.On("FindByAuthor", mock.Anything, author.ID).Return(recipes, nil)
	for _, r := range recipes {
		deps.ratingRepo.On("AverageForRecipe", mock.Anything, r.ID).Return(nil, nil)
		deps.favoriteRepo.On("CountForRecipe", mock.Anything, r.ID).Return(int64(0), nil)
		deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, author.ID, r.ID).
			Return(nil, repository.ErrFavoriteNotFound)
	}

	summaries, err := srv.UserRecipes(context.Background(), author.ID)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Kanelbullar", summaries[0].RecipeName)
	assert.Equal(t, "Pannkakor", summaries[1].RecipeName)
}

func TestDetail_PrivateRecipeHiddenFromOthers(t *testing.T) {
	srv, deps := newRecipeService(t)

	authorID := uuid.New()
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: authorID, Name: "Secret sauce", IsPublic: false}
	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)

	t.Run("anonymous viewer", func(t *testing.T) {
		_, err := srv.Detail(context.Background(), recipe.ID, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
	})

	t.Run("other viewer", func(t *testing.T) {
		otherID := uuid.New()
		_, err := srv.Detail(context.Background(), recipe.ID, &otherID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
	})
}

func TestDetail_AuthorSeesOwnPrivateRecipe(t *testing.T) {
	srv, deps := newRecipeService(t)

	author := &entity.User{ID: uuid.New(), Username: "anna"}
	recipe := &entity.Recipe{
		ID: uuid.New(), AuthorID: author.ID, Name: "Secret sauce", IsPublic: false,
		Difficulty: 2, Portions: 4, Ingredients: []string{"tomato", "basil"},
	}

	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
	deps.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipe.ID).Return(nil, nil)
	deps.ratingRepo.On("FindByUserAndRecipe", mock.Anything, author.ID, recipe.ID).
		Return(nil, repository.ErrRatingNotFound)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, recipe.ID).Return(int64(0), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, author.ID, recipe.ID).
		Return(nil, repository.ErrFavoriteNotFound)

	detail, err := srv.Detail(context.Background(), recipe.ID, &author.ID)

	require.NoError(t, err)
	assert.True(t, detail.IsAuthor)
	assert.Nil(t, detail.ViewerScore)
	assert.Equal(t, []string{"tomato", "basil"}, detail.Ingredients)
}

// The viewer's own score rides on the detail when they have rated the
// recipe.
func TestDetail_ViewerScore(t *testing.T) {
	srv, deps := newRecipeService(t)

	viewerID := uuid.New()
	author := &entity.User{ID: uuid.New(), Username: "anna"}
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar", IsPublic: true}

	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
	deps.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipe.ID).Return(floatPtr(4), nil)
	deps.ratingRepo.On("FindByUserAndRecipe", mock.Anything, viewerID, recipe.ID).
		Return(&entity.Rating{UserID: viewerID, RecipeID: recipe.ID, Score: 4}, nil)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, recipe.ID).Return(int64(1), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, viewerID, recipe.ID).
		Return(nil, repository.ErrFavoriteNotFound)

	detail, err := srv.Detail(context.Background(), recipe.ID, &viewerID)

	require.NoError(t, err)
	require.NotNil(t, detail.ViewerScore)
	assert.Equal(t, 4, *detail.ViewerScore)
	assert.False(t, detail.IsAuthor)
}

func TestProfile_AssemblesNestedSummaries(t *testing.T) {
	srv, deps := newRecipeService(t)

	viewerID := uuid.New()
	user := &entity.User{ID: uuid.New(), Username: "anna", FirstName: "Anna", LastName: "Svensson", Group: entity.GroupChef}
	public := &entity.Recipe{ID: uuid.New(), AuthorID: user.ID, Name: "Kanelbullar", IsPublic: true}
	private := &entity.Recipe{ID: uuid.New(), AuthorID: user.ID, Name: "Secret sauce", IsPublic: false}

	deps.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	deps.subscriptionRepo.On("CountForUser", mock.Anything, user.ID).Return(int64(12), nil)
	deps.ratingRepo.On("AverageForAuthor", mock.Anything, user.ID).Return(floatPtr(4.5), nil)
	deps.subscriptionRepo.On("FindBySubscriberAndTarget", mock.Anything, viewerID, user.ID).
		Return(&entity.Subscription{ID: uuid.New(), SubscriberID: viewerID, SubscribedID: user.ID}, nil)
	deps.recipeRepo.On("FindByAuthor", mock.Anything, user.ID).
		Return([]*entity.Recipe{public, private}, nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, public.ID).Return(floatPtr(4.5), nil)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, public.ID).Return(int64(3), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, viewerID, public.ID).
		Return(nil, repository.ErrFavoriteNotFound)

	profile, err := srv.Profile(context.Background(), user.ID, &viewerID)

	require.NoError(t, err)
	assert.Equal(t, "anna", profile.Username)
	assert.Equal(t, "Anna Svensson", profile.FullName)
	assert.True(t, profile.IsChef)
	assert.False(t, profile.IsAdmin)
	assert.Equal(t, int64(12), profile.Subscribers)
	assert.True(t, profile.IsSubscribed)
	require.NotNil(t, profile.Ranking)
	assert.Equal(t, 4.5, *profile.Ranking)
	// The private recipe never reaches another viewer's page.
	require.Len(t, profile.Recipes, 1)
	assert.Equal(t, "Kanelbullar", profile.Recipes[0].RecipeName)
	require.NotNil(t, profile.Recipes[0].AverageRating)
	assert.Equal(t, 4.5, *profile.Recipes[0].AverageRating)
}

func TestProfile_AnonymousViewer(t *testing.T) {
	srv, deps := newRecipeService(t)

	user := &entity.User{ID: uuid.New(), Username: "anna"}

	deps.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	deps.subscriptionRepo.On("CountForUser", mock.Anything, user.ID).Return(int64(0), nil)
	deps.ratingRepo.On("AverageForAuthor", mock.Anything, user.ID).Return(nil, nil)
	deps.recipeRepo.On("FindByAuthor", mock.Anything, user.ID).Return([]*entity.Recipe{}, nil)

	profile, err := srv.Profile(context.Background(), user.ID, nil)

	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
	assert.Nil(t, profile.Ranking)
	assert.Empty(t, profile.Recipes)
	deps.subscriptionRepo.AssertNotCalled(t, "FindBySubscriberAndTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestRate_ScoreOutOfRange(t *testing.T) {
	srv, deps := newRecipeService(t)

	_, err := srv.Rate(context.Background(), usecase.RateRecipeInput{
		UserID:   uuid.New(),
		RecipeID: uuid.New(),
		Score:    6,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	deps.ratingRepo.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything)
}

func TestRate_ReturnsNewAverage(t *testing.T) {
	srv, deps := newRecipeService(t)

	recipeID := uuid.New()
	deps.recipeRepo.On("FindByID", mock.Anything, recipeID).Return(&entity.Recipe{ID: recipeID}, nil)
	deps.ratingRepo.On("Rate", mock.Anything, mock.AnythingOfType("*entity.Rating")).Return(nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipeID).Return(floatPtr(3), nil)

	out, err := srv.Rate(context.Background(), usecase.RateRecipeInput{
		UserID:   uuid.New(),
		RecipeID: recipeID,
		Score:    4,
	})

	require.NoError(t, err)
	require.NotNil(t, out.AverageRating)
	assert.Equal(t, 3.0, *out.AverageRating)
}

func TestIngredients_UnknownRecipe(t *testing.T) {
	srv, deps := newRecipeService(t)

	recipeID := uuid.New()
	deps.recipeRepo.On("Ingredients", mock.Anything, recipeID).Return(nil, repository.ErrRecipeNotFound)

	_, err := srv.Ingredients(context.Background(), recipeID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestCreate_PublishGate(t *testing.T) {
	srv, deps := newRecipeService(t)

	muted := &entity.User{ID: uuid.New(), Username: "anna", Group: entity.GroupMuted}
	deps.userRepo.On("FindByID", mock.Anything, muted.ID).Return(muted, nil)

	_, err := srv.Create(context.Background(), usecase.CreateRecipeInput{
		AuthorID:   muted.ID,
		Name:       "Kanelbullar",
		Difficulty: 2,
		Portions:   4,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	deps.recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelete_AuthorOrAdminOnly(t *testing.T) {
	srv, deps := newRecipeService(t)

	authorID := uuid.New()
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: authorID, Name: "Kanelbullar"}
	stranger := &entity.User{ID: uuid.New(), Group: entity.GroupDefault}

	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
	deps.userRepo.On("FindByID", mock.Anything, stranger.ID).Return(stranger, nil)

	err := srv.Delete(context.Background(), stranger.ID, recipe.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	deps.recipeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Favorited recipes come back as summaries; a favorite whose recipe was
// deleted since is dropped instead of failing the listing.
func TestFavorites_ListsFavoritedRecipes(t *testing.T) {
	srv, deps := newRecipeService(t)

	viewerID := uuid.New()
	author := &entity.User{ID: uuid.New(), Username: "anna"}
	kept := &entity.Recipe{ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar", IsPublic: true}
	vanishedID := uuid.New()

	deps.favoriteRepo.On("FindRecipeIDsByUser", mock.Anything, viewerID).
		Return([]uuid.UUID{kept.ID, vanishedID}, nil)
	deps.recipeRepo.On("FindByID", mock.Anything, kept.ID).Return(kept, nil)
	deps.recipeRepo.On("FindByID", mock.Anything, vanishedID).Return(nil, repository.ErrRecipeNotFound)
	deps.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, kept.ID).Return(nil, nil)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, kept.ID).Return(int64(1), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, viewerID, kept.ID).
		Return(&entity.Favorite{ID: uuid.New(), UserID: viewerID, RecipeID: kept.ID}, nil)

	summaries, err := srv.Favorites(context.Background(), viewerID)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Kanelbullar", summaries[0].RecipeName)
	assert.True(t, summaries[0].IsFavorite)
}

func TestUpdate_AuthorOnly(t *testing.T) {
	srv, deps := newRecipeService(t)

	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: uuid.New(), Name: "Kanelbullar"}
	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)

	_, err := srv.Update(context.Background(), usecase.UpdateRecipeInput{
		ActorID:    uuid.New(),
		RecipeID:   recipe.ID,
		Name:       "Hijacked",
		Difficulty: 1,
		Portions:   1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	deps.recipeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ReplacesBody(t *testing.T) {
	srv, deps := newRecipeService(t)

	author := &entity.User{ID: uuid.New(), Username: "anna"}
	recipe := &entity.Recipe{
		ID: uuid.New(), AuthorID: author.ID, Name: "Kanelbullar",
		Difficulty: 2, Portions: 4, Ingredients: []string{"flour"},
	}

	deps.recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
	deps.recipeRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Recipe")).Return(nil)
	deps.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	deps.ratingRepo.On("AverageForRecipe", mock.Anything, recipe.ID).Return(nil, nil)
	deps.ratingRepo.On("FindByUserAndRecipe", mock.Anything, author.ID, recipe.ID).
		Return(nil, repository.ErrRatingNotFound)
	deps.favoriteRepo.On("CountForRecipe", mock.Anything, recipe.ID).Return(int64(0), nil)
	deps.favoriteRepo.On("FindByUserAndRecipe", mock.Anything, author.ID, recipe.ID).
		Return(nil, repository.ErrFavoriteNotFound)

	detail, err := srv.Update(context.Background(), usecase.UpdateRecipeInput{
		ActorID:     author.ID,
		RecipeID:    recipe.ID,
		Name:        "Cardamom buns",
		Difficulty:  3,
		Portions:    6,
		Ingredients: []string{"flour", "cardamom"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Cardamom buns", detail.RecipeName)
	assert.Equal(t, 3, detail.Difficulty)
	assert.Equal(t, []string{"flour", "cardamom"}, detail.Ingredients)
}
