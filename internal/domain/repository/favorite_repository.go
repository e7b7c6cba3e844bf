// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite edge is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when a favorite edge for the same
	// (user, recipe) pair already exists. The storage layer enforces the
	// pair's uniqueness; callers treat this as "edge already present".
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the standard operations for favorite edges.
type FavoriteRepository interface {
	// FindByUserAndRecipe retrieves the favorite edge for an exact
	// (user, recipe) pair. Returns ErrFavoriteNotFound when absent.
	FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error)

	// CountForRecipe returns the number of favorite edges targeting a recipe.
	CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)

	// FindRecipeIDsByUser retrieves the recipe IDs a user has favorited,
	// newest edge first.
	FindRecipeIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Create persists a new favorite edge. Returns ErrDuplicateFavorite
	// when the pair's unique constraint is violated.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes a favorite edge by its own identity, not by the pair key.
	Delete(ctx context.Context, id uuid.UUID) error
}
