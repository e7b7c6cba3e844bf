package handler

import (
	"log/slog"
	"net/http"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/response"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=40"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents the request body for login. The identifier is a
// username or an email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateRoleRequest represents the request body for reassigning a group.
type UpdateRoleRequest struct {
	Username string `json:"username" validate:"required"`
	Group    string `json:"group" validate:"required"`
}

// UpdateProfileRequest represents the request body for editing the caller's
// own account fields.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	AvatarURL string `json:"avatar_url"`
	DarkMode  bool   `json:"dark_mode"`
}

// userResponse is the public shape of an account in responses.
type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
	Group     string `json:"group"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Registration input failed validation")
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, userResponse{
		ID:        output.User.ID.String(),
		Username:  output.User.Username,
		Email:     output.User.Email,
		FirstName: output.User.FirstName,
		LastName:  output.User.LastName,
		AvatarURL: output.User.AvatarURL,
		Group:     output.User.Group.String(),
	}, "User registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Login input failed validation")
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user": userResponse{
			ID:        output.User.ID.String(),
			Username:  output.User.Username,
			Email:     output.User.Email,
			FirstName: output.User.FirstName,
			LastName:  output.User.LastName,
			AvatarURL: output.User.AvatarURL,
			Group:     output.User.Group.String(),
		},
	}, "Login successful")
}

// UpdateRole handles the admin-only group reassignment request.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role update input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Role update input failed validation")
	}

	if err := h.userUC.UpdateRole(c.Request().Context(), usecase.UpdateRoleInput{
		ActorID:  actorID,
		Username: req.Username,
		Group:    req.Group,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"username": req.Username,
		"group":    req.Group,
	}, "User role updated")
}

// UpdateProfile handles editing the caller's own account fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Profile input failed validation")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
		DarkMode:  req.DarkMode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
		Group:     user.Group.String(),
	}, "Profile updated")
}

// List returns all registered accounts ordered by username.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing := make([]userResponse, 0, len(users))
	for _, user := range users {
		listing = append(listing, userResponse{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			AvatarURL: user.AvatarURL,
			Group:     user.Group.String(),
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": listing,
	}, "Users loaded")
}
