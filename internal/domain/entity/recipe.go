// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a published dish owned by exactly one author. The author
// reference is immutable after creation; everything else may be edited by
// the author.
type Recipe struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the recipe.
	AuthorID    uuid.UUID  // The ID of the user who published the recipe.
	Name        string     // Display name of the dish.
	IsPublic    bool       // Visibility flag; private recipes are only shown to their author.
	Difficulty  int        // Subjective difficulty, 1 (easy) to 5 (hard).
	Portions    int        // Number of people the listed quantities serve.
	ImageURL    string     // Reference to the recipe's picture.
	CategoryID  *uuid.UUID // Optional category reference.
	Ingredients []string   // Ordered ingredient lines.
	Utensils    []string   // Ordered utensil lines.
	Steps       []string   // Ordered preparation steps.
	CreatedAt   time.Time  // Timestamp of when the recipe was published.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// Rating is a scalar score one user gave one recipe. A user rates a recipe
// at most once; re-rating replaces the previous score.
type Rating struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the rating.
	UserID    uuid.UUID // The rater.
	RecipeID  uuid.UUID // The rated recipe.
	Score     int       // Score between 0 and 5 inclusive.
	CreatedAt time.Time // Timestamp of when the rating was first given.
	UpdatedAt time.Time // Timestamp of the last re-rating.
}

// MinScore and MaxScore bound valid rating scores. Zero is a valid score,
// which is why aggregate averages must use a null sentinel for "no ratings".
const (
	MinScore = 0
	MaxScore = 5
)
