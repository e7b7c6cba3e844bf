// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a directed edge from a user to a recipe, meaning "this user
// has favorited this recipe". At most one live edge exists per
// (user, recipe) pair; the storage layer enforces this with a unique
// constraint and the toggle logic relies on it.
type Favorite struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the edge.
	UserID    uuid.UUID // The user who favorited.
	RecipeID  uuid.UUID // The favorited recipe.
	CreatedAt time.Time // Timestamp of when the edge was created.
}

// Subscription is a directed edge between two users, meaning "subscriber
// follows subscribed". At most one live edge exists per ordered pair;
// self-subscription is rejected before the edge is created.
type Subscription struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the edge.
	SubscriberID uuid.UUID // The follower.
	SubscribedID uuid.UUID // The followed user.
	CreatedAt    time.Time // Timestamp of when the edge was created.
}
