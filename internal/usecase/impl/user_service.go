// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"tastebook/config"
	deliverycontext "tastebook/internal/delivery/context"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/domain/service"
	"tastebook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password does not meet the minimum length")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		DarkMode:  true,
		Group:     entity.GroupDefault,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser, hashedPassword); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process. The identifier is resolved as a
// username first, then as an email. Every failure surfaces the same
// ErrInvalidCredentials so the response never reveals whether the identity
// exists or the password was wrong.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	loggedInUser, err := srv.resolveLoginIdentity(ctx, input.Identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, err
	}

	storedHash, err := srv.userRepo.PasswordHash(ctx, loggedInUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login credential")
	}

	// bcrypt check is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, storedHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// A group that cannot log in gets the same uniform error surface as a
	// bad password, so bans are not probeable.
	if !loggedInUser.Group.CanLogin() {
		srv.log(ctx).Warn("Login blocked by group", slog.Any("userID", loggedInUser.ID), slog.String("group", loggedInUser.Group.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, srv.extractRoles(loggedInUser))
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// resolveLoginIdentity matches the identifier against usernames first and
// emails second. Both misses collapse into ErrInvalidCredentials.
func (srv *userService) resolveLoginIdentity(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to resolve login identifier by username")
	}

	user, err = srv.userRepo.FindByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to resolve login identifier by email")
	}

	return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
}

// UpdateRole reassigns a user's group. Only admins may do this.
func (srv *userService) UpdateRole(ctx context.Context, input usecase.UpdateRoleInput) error {
	srv.log(ctx).Info("Updating user role", slog.String("username", input.Username), slog.String("group", input.Group))

	actor, err := srv.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("acting user no longer exists")
		}

		return errors.Wrap(err, "failed to load acting user")
	}
	if !actor.Group.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("role updates require admin permissions")
	}

	group := entity.UserGroup(input.Group)
	if !group.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown user group")
	}

	target, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("role update target not found")
		}

		return errors.Wrap(err, "failed to resolve role update target")
	}

	if err := srv.userRepo.UpdateGroup(ctx, target.ID, group); err != nil {
		srv.log(ctx).Error("Failed to update user group", slog.Any("userID", target.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update user group")
	}

	srv.log(ctx).Debug("User role updated", slog.Any("userID", target.ID), slog.String("group", group.String()))

	return nil
}

// UpdateProfile changes the caller's own editable fields. The username,
// email and group stay as they are.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("acting user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.AvatarURL = input.AvatarURL
	user.DarkMode = input.DarkMode

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

// List returns all accounts ordered by username.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// extractRoles maps the user's group onto token role claims.
func (srv *userService) extractRoles(user *entity.User) []string {
	roles := []string{entity.GroupDefault.String()}
	if user.Group != entity.GroupDefault && user.Group.IsValid() {
		roles = append(roles, user.Group.String())
	}

	return roles
}
