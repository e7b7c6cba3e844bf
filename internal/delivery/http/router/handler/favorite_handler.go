package handler

import (
	"log/slog"
	"net/http"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/response"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for the favorite toggle handler.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// SwitchFavoriteRequest represents the request body for the favorite toggle.
type SwitchFavoriteRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
}

// Switch flips the favorite edge between the caller and a recipe.
func (h *FavoriteHandler) Switch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req SwitchFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Favorite input failed validation")
	}

	out, err := h.favoriteUC.SwitchFavorite(c.Request().Context(), userID, req.RecipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipe_id":   req.RecipeID,
		"is_favorite": out.IsFavorite,
	}, "Favorite switched")
}
