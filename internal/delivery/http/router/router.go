// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	FavoriteHandler     *handler.FavoriteHandler
	RecipeHandler       *handler.RecipeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	favoriteHandler     *handler.FavoriteHandler
	recipeHandler       *handler.RecipeHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		favoriteHandler:     params.FavoriteHandler,
		recipeHandler:       params.RecipeHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// API routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/subscription/create", r.subscriptionHandler.Create)
		apiGroup.POST("/subscription/remove", r.subscriptionHandler.Remove)
		apiGroup.POST("/subscription/list", r.subscriptionHandler.List)

		apiGroup.POST("/favorite/switch", r.favoriteHandler.Switch)
		apiGroup.POST("/favorite/list", r.recipeHandler.Favorites)

		apiGroup.POST("/recipe/create", r.recipeHandler.Create)
		apiGroup.POST("/recipe/update", r.recipeHandler.Update)
		apiGroup.POST("/recipe/delete", r.recipeHandler.Delete)
		apiGroup.POST("/recipe/rate", r.recipeHandler.Rate)
		apiGroup.POST("/recipe/get_ingredients", r.recipeHandler.GetIngredients)
		apiGroup.POST("/recipe/user_recipes", r.recipeHandler.UserRecipes)

		apiGroup.POST("/user/update_profile", r.userHandler.UpdateProfile)
		apiGroup.POST("/user/list", r.userHandler.List)

		// Role management needs the admin role on top of authentication.
		apiGroup.POST("/user/update_role", r.userHandler.UpdateRole, r.authMiddleware.RequireRole("admin"))
	}

	// Public read models; a valid token upgrades the viewer-dependent flags.
	readGroup := e.Group("")
	readGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		readGroup.GET("/recipes/:id", r.recipeHandler.Detail)
		readGroup.GET("/profiles/:id", r.recipeHandler.Profile)
	}
}
