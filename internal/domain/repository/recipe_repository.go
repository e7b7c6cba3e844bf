// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/errors"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID, including its
	// ingredient, utensil and step lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindByAuthor retrieves all recipes published by a user, newest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error)

	// Ingredients retrieves the ordered ingredient lines of a recipe.
	// Returns ErrRecipeNotFound if the recipe does not exist.
	Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error)

	// Create persists a new recipe with its element lines.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe. The author reference is never changed.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe and its element lines.
	Delete(ctx context.Context, id uuid.UUID) error
}
