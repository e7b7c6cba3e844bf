package mocks

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// RecipeRepository is a mock implementation of repository.RecipeRepository.
type RecipeRepository struct {
	mock.Mock
}

func (m *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *RecipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *RecipeRepository) Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *RecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)

	return args.Error(0)
}

func (m *RecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)

	return args.Error(0)
}

func (m *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
