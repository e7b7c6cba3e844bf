// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tastebook/internal/domain/entity"
	"tastebook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// PasswordHash retrieves the stored credential for a user. The hash never
	// travels on the User entity itself.
	PasswordHash(ctx context.Context, id uuid.UUID) (string, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateGroup changes the group assignment of a user.
	UpdateGroup(ctx context.Context, id uuid.UUID, group entity.UserGroup) error

	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]*entity.User, error)
}
