package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateRecipeInput defines the data required to publish a new recipe.
type CreateRecipeInput struct {
	AuthorID    uuid.UUID
	Name        string
	IsPublic    bool
	Difficulty  int
	Portions    int
	ImageURL    string
	CategoryID  *uuid.UUID
	Ingredients []string
	Utensils    []string
	Steps       []string
}

// UpdateRecipeInput defines the data required to edit a recipe. The whole
// body is replaced; the author never changes.
type UpdateRecipeInput struct {
	ActorID     uuid.UUID
	RecipeID    uuid.UUID
	Name        string
	IsPublic    bool
	Difficulty  int
	Portions    int
	ImageURL    string
	CategoryID  *uuid.UUID
	Ingredients []string
	Utensils    []string
	Steps       []string
}

// RateRecipeInput defines the data required to rate a recipe.
type RateRecipeInput struct {
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Score    int
}

// --- Read models ---

// RecipeSummary is the denormalized card shown in recipe listings. It is
// assembled per (viewer, recipe) pair: the favorite flag depends on who is
// looking, the rest is shared.
type RecipeSummary struct {
	RecipeID        uuid.UUID `json:"recipe_id"`
	RecipeName      string    `json:"recipe_name"`
	AuthorNick      string    `json:"author_nick"`
	AuthorFirstName string    `json:"author_first_name"`
	AuthorLastName  string    `json:"author_last_name"`
	// AverageRating is nil when the recipe has never been rated. A zero
	// average means "rated, badly", which is a different thing.
	AverageRating *float64 `json:"average_rating"`
	Favorites     int64    `json:"favorites"`
	IsFavorite    bool     `json:"is_favorite"`
}

// RecipeDetail extends the summary with the full recipe body.
type RecipeDetail struct {
	RecipeSummary

	Difficulty int        `json:"difficulty"`
	Portions   int        `json:"portions"`
	IsPublic   bool       `json:"is_public"`
	ImageURL   string     `json:"image_url"`
	CategoryID *uuid.UUID `json:"category_id"`
	IsAuthor   bool       `json:"is_author"`
	// ViewerScore is the score the viewer gave this recipe, nil when the
	// viewer is anonymous or has not rated it.
	ViewerScore *int     `json:"viewer_score"`
	Ingredients []string `json:"ingredients"`
	Utensils    []string `json:"utensils"`
	Steps       []string `json:"steps"`
}

// ProfileView is the denormalized page model for a user's public profile,
// assembled per (viewer, user) pair. Each of the user's recipes appears as
// a nested summary computed for the same viewer.
type ProfileView struct {
	UserID       uuid.UUID        `json:"user_id"`
	Username     string           `json:"username"`
	FullName     string           `json:"full_name"`
	AvatarURL    string           `json:"avatar_url"`
	IsChef       bool             `json:"is_chef"`
	IsAdmin      bool             `json:"is_admin"`
	Subscribers  int64 `json:"subscribers"`
	IsSubscribed bool  `json:"is_subscribed"`
	// Ranking is the mean score across all ratings on the user's recipes;
	// nil when none of their recipes has been rated.
	Ranking *float64         `json:"ranking"`
	Recipes []*RecipeSummary `json:"recipes"`
}

// RateRecipeOutput returns the recipe's average after the score is recorded.
type RateRecipeOutput struct {
	AverageRating *float64 `json:"average_rating"`
}

// RecipeUsecase defines the interface for recipe publication and the
// aggregated read models. Viewer IDs are pointers; nil means the request
// was anonymous, which turns every viewer-dependent flag off.
type RecipeUsecase interface {
	// Create publishes a new recipe for the author.
	Create(ctx context.Context, input CreateRecipeInput) (*RecipeDetail, error)

	// Update replaces a recipe's body. Only the author may edit.
	Update(ctx context.Context, input UpdateRecipeInput) (*RecipeDetail, error)

	// Delete removes a recipe. Only the author or an admin may delete.
	Delete(ctx context.Context, actorID, recipeID uuid.UUID) error

	// Rate records the user's score for a recipe and returns the new average.
	Rate(ctx context.Context, input RateRecipeInput) (*RateRecipeOutput, error)

	// Ingredients returns the ordered ingredient lines of a recipe.
	Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error)

	// UserRecipes returns the calling user's own recipes as summaries.
	UserRecipes(ctx context.Context, userID uuid.UUID) ([]*RecipeSummary, error)

	// Favorites returns the recipes the user has favorited as summaries,
	// newest favorite first. Recipes deleted since being favorited are
	// dropped from the listing.
	Favorites(ctx context.Context, userID uuid.UUID) ([]*RecipeSummary, error)

	// Detail assembles the full read model for one recipe.
	Detail(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) (*RecipeDetail, error)

	// Profile assembles the read model for a user's profile page.
	Profile(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID) (*ProfileView, error)
}
