package mocks

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// RatingRepository is a mock implementation of repository.RatingRepository.
type RatingRepository struct {
	mock.Mock
}

func (m *RatingRepository) Rate(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *RatingRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Rating, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *RatingRepository) AverageForRecipe(ctx context.Context, recipeID uuid.UUID) (*float64, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*float64), args.Error(1)
}

func (m *RatingRepository) AverageForAuthor(ctx context.Context, authorID uuid.UUID) (*float64, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*float64), args.Error(1)
}
