package mocks

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserUsecase is a mock implementation of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *UserUsecase) UpdateRole(ctx context.Context, input usecase.UpdateRoleInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *UserUsecase) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserUsecase) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

// SubscriptionUsecase is a mock implementation of usecase.SubscriptionUsecase.
type SubscriptionUsecase struct {
	mock.Mock
}

func (m *SubscriptionUsecase) Subscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) (*usecase.SubscribeOutput, error) {
	args := m.Called(ctx, subscriberID, targetUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SubscribeOutput), args.Error(1)
}

func (m *SubscriptionUsecase) Unsubscribe(ctx context.Context, subscriberID uuid.UUID, targetUsername string) error {
	args := m.Called(ctx, subscriberID, targetUsername)

	return args.Error(0)
}

func (m *SubscriptionUsecase) Subscriptions(ctx context.Context, subscriberID uuid.UUID) ([]*usecase.SubscriptionInfo, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.SubscriptionInfo), args.Error(1)
}

// FavoriteUsecase is a mock implementation of usecase.FavoriteUsecase.
type FavoriteUsecase struct {
	mock.Mock
}

func (m *FavoriteUsecase) SwitchFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*usecase.SwitchFavoriteOutput, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SwitchFavoriteOutput), args.Error(1)
}

// RecipeUsecase is a mock implementation of usecase.RecipeUsecase.
type RecipeUsecase struct {
	mock.Mock
}

func (m *RecipeUsecase) Create(ctx context.Context, input usecase.CreateRecipeInput) (*usecase.RecipeDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeDetail), args.Error(1)
}

func (m *RecipeUsecase) Update(ctx context.Context, input usecase.UpdateRecipeInput) (*usecase.RecipeDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeDetail), args.Error(1)
}

func (m *RecipeUsecase) Favorites(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.RecipeSummary), args.Error(1)
}

func (m *RecipeUsecase) Delete(ctx context.Context, actorID, recipeID uuid.UUID) error {
	args := m.Called(ctx, actorID, recipeID)

	return args.Error(0)
}

func (m *RecipeUsecase) Rate(ctx context.Context, input usecase.RateRecipeInput) (*usecase.RateRecipeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RateRecipeOutput), args.Error(1)
}

func (m *RecipeUsecase) Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *RecipeUsecase) UserRecipes(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.RecipeSummary), args.Error(1)
}

func (m *RecipeUsecase) Detail(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) (*usecase.RecipeDetail, error) {
	args := m.Called(ctx, recipeID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeDetail), args.Error(1)
}

func (m *RecipeUsecase) Profile(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID) (*usecase.ProfileView, error) {
	args := m.Called(ctx, userID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ProfileView), args.Error(1)
}
