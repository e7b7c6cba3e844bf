// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/errors"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// Rate records a user's score for a recipe. A user rates a recipe at
	// most once; rating the same recipe again replaces the previous score.
	Rate(ctx context.Context, rating *entity.Rating) error

	// FindByUserAndRecipe retrieves the rating a user gave a recipe.
	FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Rating, error)

	// AverageForRecipe computes the arithmetic mean of all scores for a
	// recipe. Returns nil when the recipe has no ratings; zero is a valid
	// average and must stay distinguishable from "no ratings".
	AverageForRecipe(ctx context.Context, recipeID uuid.UUID) (*float64, error)

	// AverageForAuthor computes the mean score across all ratings on a
	// user's recipes. Returns nil when none of their recipes is rated.
	AverageForAuthor(ctx context.Context, authorID uuid.UUID) (*float64, error)
}
