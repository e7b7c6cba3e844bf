package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SwitchFavoriteOutput reports the state of the favorite edge after a
// toggle. IsFavorite is the state the store is in when the call returns,
// which is also what a concurrent duplicate resolves to.
type SwitchFavoriteOutput struct {
	IsFavorite bool
}

// FavoriteUsecase defines the interface for the favorite toggle.
type FavoriteUsecase interface {
	// SwitchFavorite flips the favorite edge between a user and a recipe:
	// absent edges are created, present edges are removed. Exactly one
	// store write happens per call.
	SwitchFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*SwitchFavoriteOutput, error)
}
