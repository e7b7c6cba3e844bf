package mocks

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// FavoriteRepository is a mock implementation of repository.FavoriteRepository.
type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Favorite), args.Error(1)
}

func (m *FavoriteRepository) CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *FavoriteRepository) FindRecipeIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *FavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	args := m.Called(ctx, favorite)

	return args.Error(0)
}

func (m *FavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
