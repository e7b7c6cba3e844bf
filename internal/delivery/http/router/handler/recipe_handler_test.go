package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebook/internal/delivery/http/validator"
	"tastebook/internal/mocks"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecipeHandler(recipeUC *mocks.RecipeUsecase) *RecipeHandler {
	return NewRecipeHandler(RecipeHandlerParams{
		RecipeUC: recipeUC,
		Logger:   testLogger(),
	})
}

// newDetailContext builds an echo context for the GET routes that address a
// resource via the :id path param. The viewer stays anonymous unless the
// caller sets a userID afterwards.
func newDetailContext(t *testing.T, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func TestRecipeHandler_DetailAnonymousViewer(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	recipeID := uuid.New()
	detail := &usecase.RecipeDetail{
		RecipeSummary: usecase.RecipeSummary{
			RecipeID:   recipeID,
			RecipeName: "Shakshuka",
		},
	}
	recipeUC.On("Detail", mock.Anything, recipeID, (*uuid.UUID)(nil)).
		Return(detail, nil)

	c, rec := newDetailContext(t, recipeID.String())

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Shakshuka", data["recipe_name"])
	assert.Equal(t, false, data["is_favorite"])
}

func TestRecipeHandler_DetailAuthenticatedViewer(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	recipeID := uuid.New()
	viewerID := uuid.New()
	recipeUC.On("Detail", mock.Anything, recipeID, &viewerID).
		Return(&usecase.RecipeDetail{
			RecipeSummary: usecase.RecipeSummary{RecipeID: recipeID, IsFavorite: true},
		}, nil)

	c, rec := newDetailContext(t, recipeID.String())
	c.Set("userID", viewerID)

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, data["is_favorite"])
}

func TestRecipeHandler_DetailInvalidID(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	c, rec := newDetailContext(t, "not-a-uuid")

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	recipeUC.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeHandler_Rate(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	userID := uuid.New()
	recipeID := uuid.New()
	average := 4.5
	recipeUC.On("Rate", mock.Anything, usecase.RateRecipeInput{
		UserID:   userID,
		RecipeID: recipeID,
		Score:    5,
	}).Return(&usecase.RateRecipeOutput{AverageRating: &average}, nil)

	c, rec := newTestContext(t, fmt.Sprintf(`{"recipe_id":%q,"score":5}`, recipeID), userID)

	require.NoError(t, h.Rate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, 4.5, data["average_rating"])
}

func TestRecipeHandler_RateScoreTooHigh(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	c, rec := newTestContext(t, fmt.Sprintf(`{"recipe_id":%q,"score":6}`, uuid.New()), uuid.New())

	require.NoError(t, h.Rate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	recipeUC.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything)
}

func TestRecipeHandler_UserRecipes(t *testing.T) {
	recipeUC := new(mocks.RecipeUsecase)
	h := newRecipeHandler(recipeUC)

	userID := uuid.New()
	summaries := []*usecase.RecipeSummary{
		{RecipeID: uuid.New(), RecipeName: "Ramen"},
		{RecipeID: uuid.New(), RecipeName: "Udon"},
	}
	recipeUC.On("UserRecipes", mock.Anything, userID).Return(summaries, nil)

	c, rec := newTestContext(t, `{}`, userID)

	require.NoError(t, h.UserRecipes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Len(t, data["recipes_info"], 2)
}
