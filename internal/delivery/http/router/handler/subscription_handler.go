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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscriptionRequest represents the request body for both subscription
// endpoints: the target is addressed by username.
type SubscriptionRequest struct {
	Username string `json:"username" validate:"required"`
}

// Create handles subscribing to a user by username.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Subscription input failed validation")
	}

	out, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, req.Username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Subscribed successfully"
	if out.AlreadySubscribed {
		message = "Already subscribed"
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"username":           req.Username,
		"already_subscribed": out.AlreadySubscribed,
	}, message)
}

// Remove handles unsubscribing from a user by username. A missing edge
// surfaces as 404 so the caller can tell the no-op apart from a removal.
func (h *SubscriptionHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Subscription input failed validation")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, req.Username); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"username": req.Username,
	}, "Unsubscribed successfully")
}

// List returns the users the caller is subscribed to.
func (h *SubscriptionHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	infos, err := h.subscriptionUC.Subscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"subscriptions": infos,
	}, "Subscriptions loaded")
}
