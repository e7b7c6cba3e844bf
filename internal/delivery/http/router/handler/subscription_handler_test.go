package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tastebook/internal/delivery/http/validator"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/mocks"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a JSON POST with an
// authenticated user already on it.
func newTestContext(t *testing.T, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestSubscriptionHandler_Create(t *testing.T) {
	subscriptionUC := new(mocks.SubscriptionUsecase)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         testLogger(),
	})

	userID := uuid.New()
	subscriptionUC.On("Subscribe", mock.Anything, userID, "chef_anna").
		Return(&usecase.SubscribeOutput{AlreadySubscribed: false}, nil)

	c, rec := newTestContext(t, `{"username":"chef_anna"}`, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, false, data["already_subscribed"])
}

func TestSubscriptionHandler_CreateAlreadySubscribed(t *testing.T) {
	subscriptionUC := new(mocks.SubscriptionUsecase)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         testLogger(),
	})

	userID := uuid.New()
	subscriptionUC.On("Subscribe", mock.Anything, userID, "chef_anna").
		Return(&usecase.SubscribeOutput{AlreadySubscribed: true}, nil)

	c, rec := newTestContext(t, `{"username":"chef_anna"}`, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, data["already_subscribed"])
}

func TestSubscriptionHandler_CreateUnknownTarget(t *testing.T) {
	subscriptionUC := new(mocks.SubscriptionUsecase)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         testLogger(),
	})

	userID := uuid.New()
	subscriptionUC.On("Subscribe", mock.Anything, userID, "ghost").
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("subscription target not found"))

	c, rec := newTestContext(t, `{"username":"ghost"}`, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "USER_NOT_FOUND", errInfo["code"])
}

// A missing edge renders as 404 with its own business code, so clients can
// tell the no-op apart from a removal.
func TestSubscriptionHandler_RemoveMissingEdge(t *testing.T) {
	subscriptionUC := new(mocks.SubscriptionUsecase)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         testLogger(),
	})

	userID := uuid.New()
	subscriptionUC.On("Unsubscribe", mock.Anything, userID, "chef_anna").
		Return(domainerrors.ErrSubscriptionNotFound.WrapMessage("no subscription to remove"))

	c, rec := newTestContext(t, `{"username":"chef_anna"}`, userID)

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	errInfo := decodeEnvelope(t, rec)["error"].(map[string]any)
	assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", errInfo["code"])
}

func TestSubscriptionHandler_MissingUsername(t *testing.T) {
	subscriptionUC := new(mocks.SubscriptionUsecase)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         testLogger(),
	})

	c, rec := newTestContext(t, `{}`, uuid.New())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	subscriptionUC.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything, mock.Anything)
}
