package mocks

import (
	"context"

	"tastebook/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the configured factory so the business
// logic inside the transaction still executes in tests.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
// It hands out the fixed mock repositories it is built with.
type RepositoryFactory struct {
	UserRepo         *UserRepository
	RecipeRepo       *RecipeRepository
	FavoriteRepo     *FavoriteRepository
	SubscriptionRepo *SubscriptionRepository
}

func (f *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *RepositoryFactory) NewRecipeRepository() repository.RecipeRepository {
	return f.RecipeRepo
}

func (f *RepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return f.FavoriteRepo
}

func (f *RepositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.SubscriptionRepo
}
