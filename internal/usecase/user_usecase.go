// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in. Identifier is matched
// against usernames first, then against emails.
type LoginInput struct {
	Identifier string
	Password   string
}

// UpdateRoleInput defines the data required to reassign a user's group.
type UpdateRoleInput struct {
	ActorID  uuid.UUID
	Username string
	Group    string
}

// UpdateProfileInput defines the editable account fields. The username,
// email and group are not editable through this operation.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	AvatarURL string
	DarkMode  bool
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	UpdateRole(ctx context.Context, input UpdateRoleInput) error

	// UpdateProfile changes the caller's own editable fields and returns
	// the updated account.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// List returns all accounts ordered by username.
	List(ctx context.Context) ([]*entity.User, error)
}
