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

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler holds dependencies for recipe and profile handlers.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// CreateRecipeRequest represents the request body for publishing a recipe.
type CreateRecipeRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	IsPublic    bool       `json:"is_public"`
	Difficulty  int        `json:"difficulty" validate:"required,min=1,max=5"`
	Portions    int        `json:"portions" validate:"required,min=1"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Ingredients []string   `json:"ingredients"`
	Utensils    []string   `json:"utensils"`
	Steps       []string   `json:"steps"`
}

// UpdateRecipeRequest represents the request body for editing a recipe.
// The whole body replaces the stored one.
type UpdateRecipeRequest struct {
	RecipeID    uuid.UUID  `json:"recipe_id" validate:"required"`
	Name        string     `json:"name" validate:"required,max=200"`
	IsPublic    bool       `json:"is_public"`
	Difficulty  int        `json:"difficulty" validate:"required,min=1,max=5"`
	Portions    int        `json:"portions" validate:"required,min=1"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Ingredients []string   `json:"ingredients"`
	Utensils    []string   `json:"utensils"`
	Steps       []string   `json:"steps"`
}

// RecipeIDRequest represents request bodies that address a recipe by ID.
type RecipeIDRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
}

// RateRecipeRequest represents the request body for rating a recipe.
type RateRecipeRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
	Score    int       `json:"score" validate:"min=0,max=5"`
}

// Create handles publishing a new recipe.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Recipe input failed validation")
	}

	detail, err := h.recipeUC.Create(c.Request().Context(), usecase.CreateRecipeInput{
		AuthorID:    userID,
		Name:        req.Name,
		IsPublic:    req.IsPublic,
		Difficulty:  req.Difficulty,
		Portions:    req.Portions,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Ingredients: req.Ingredients,
		Utensils:    req.Utensils,
		Steps:       req.Steps,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail, "Recipe published")
}

// Update handles editing a recipe.
func (h *RecipeHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Recipe input failed validation")
	}

	detail, err := h.recipeUC.Update(c.Request().Context(), usecase.UpdateRecipeInput{
		ActorID:     userID,
		RecipeID:    req.RecipeID,
		Name:        req.Name,
		IsPublic:    req.IsPublic,
		Difficulty:  req.Difficulty,
		Portions:    req.Portions,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Ingredients: req.Ingredients,
		Utensils:    req.Utensils,
		Steps:       req.Steps,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Recipe updated")
}

// Favorites returns the caller's favorited recipes as summary cards.
func (h *RecipeHandler) Favorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	summaries, err := h.recipeUC.Favorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipes_info": summaries,
	}, "Favorites loaded")
}

// Delete handles removing a recipe.
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req RecipeIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Recipe input failed validation")
	}

	if err := h.recipeUC.Delete(c.Request().Context(), userID, req.RecipeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipe_id": req.RecipeID,
	}, "Recipe deleted")
}

// Rate handles recording a score for a recipe.
func (h *RecipeHandler) Rate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req RateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Rating input failed validation")
	}

	out, err := h.recipeUC.Rate(c.Request().Context(), usecase.RateRecipeInput{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Score:    req.Score,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out, "Rating recorded")
}

// GetIngredients returns the ordered ingredient lines of a recipe.
func (h *RecipeHandler) GetIngredients(c echo.Context) error {
	var req RecipeIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Recipe input failed validation")
	}

	ingredients, err := h.recipeUC.Ingredients(c.Request().Context(), req.RecipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"ingredients": ingredients,
	}, "Ingredients loaded")
}

// UserRecipes returns the calling user's own recipes as summary cards.
func (h *RecipeHandler) UserRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	summaries, err := h.recipeUC.UserRecipes(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipes_info": summaries,
	}, "Recipes loaded")
}

// Detail returns the full read model for one recipe. Anonymous viewers get
// viewer-dependent flags switched off.
func (h *RecipeHandler) Detail(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	detail, err := h.recipeUC.Detail(c.Request().Context(), recipeID, middleware.GetViewerID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Recipe loaded")
}

// Profile returns the profile page read model for one user.
func (h *RecipeHandler) Profile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	profile, err := h.recipeUC.Profile(c.Request().Context(), userID, middleware.GetViewerID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile loaded")
}
