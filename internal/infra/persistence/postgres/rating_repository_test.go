package postgres

import (
	"context"
	"os"
	"testing"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openRatingTestDB connects to the dedicated test database named by
// TASTEBOOK_TEST_DSN and rebuilds the tables the rating queries touch.
// Tests skip when the variable is unset.
func openRatingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TASTEBOOK_TEST_DSN")
	if dsn == "" {
		t.Skip("TASTEBOOK_TEST_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS ratings`).Error)
	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS recipes`).Error)
	require.NoError(t, db.Exec(`
		CREATE TABLE recipes (
			id uuid PRIMARY KEY,
			author_id uuid NOT NULL,
			name varchar(200) NOT NULL,
			is_public boolean NOT NULL DEFAULT true,
			difficulty int NOT NULL DEFAULT 1,
			portions int NOT NULL DEFAULT 1,
			image_url text,
			category_id uuid,
			created_at timestamptz,
			updated_at timestamptz,
			deleted_at timestamptz
		)`).Error)
	require.NoError(t, db.Exec(`
		CREATE TABLE ratings (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			recipe_id uuid NOT NULL,
			score int NOT NULL,
			created_at timestamptz,
			updated_at timestamptz,
			CONSTRAINT idx_ratings_user_recipe UNIQUE (user_id, recipe_id)
		)`).Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func insertTestRecipe(t *testing.T, db *gorm.DB, authorID uuid.UUID) uuid.UUID {
	t.Helper()

	recipeID := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO recipes (id, author_id, name) VALUES (?, ?, ?)`,
		recipeID, authorID, "test recipe",
	).Error)

	return recipeID
}

func rateAs(t *testing.T, repo *ratingRepository, userID, recipeID uuid.UUID, score int) {
	t.Helper()

	require.NoError(t, repo.Rate(context.Background(), &entity.Rating{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Score:    score,
	}))
}

// AVG over zero rows is NULL and must come back as a nil pointer, not 0.
func TestRatingRepository_AverageForRecipe_NilOverZeroRows(t *testing.T) {
	db := openRatingTestDB(t)
	repo := NewRatingRepository(db).(*ratingRepository)

	recipeID := insertTestRecipe(t, db, uuid.New())

	average, err := repo.AverageForRecipe(context.Background(), recipeID)

	require.NoError(t, err)
	assert.Nil(t, average)
}

func TestRatingRepository_AverageForRecipe_MeanOfScores(t *testing.T) {
	db := openRatingTestDB(t)
	repo := NewRatingRepository(db).(*ratingRepository)

	recipeID := insertTestRecipe(t, db, uuid.New())
	rateAs(t, repo, uuid.New(), recipeID, 2)
	rateAs(t, repo, uuid.New(), recipeID, 4)

	average, err := repo.AverageForRecipe(context.Background(), recipeID)

	require.NoError(t, err)
	require.NotNil(t, average)
	assert.InDelta(t, 3.0, *average, 1e-9)
}

// Re-rating the same recipe replaces the previous score instead of adding
// a second row.
func TestRatingRepository_Rate_ReplacesPreviousScore(t *testing.T) {
	db := openRatingTestDB(t)
	repo := NewRatingRepository(db).(*ratingRepository)

	recipeID := insertTestRecipe(t, db, uuid.New())
	userID := uuid.New()
	rateAs(t, repo, userID, recipeID, 1)
	rateAs(t, repo, userID, recipeID, 5)

	var rows int64
	require.NoError(t, db.Table("ratings").Where("recipe_id = ?", recipeID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	average, err := repo.AverageForRecipe(context.Background(), recipeID)

	require.NoError(t, err)
	require.NotNil(t, average)
	assert.InDelta(t, 5.0, *average, 1e-9)
}

// The author average spans all of the author's live recipes and ignores
// soft-deleted ones.
func TestRatingRepository_AverageForAuthor(t *testing.T) {
	db := openRatingTestDB(t)
	repo := NewRatingRepository(db).(*ratingRepository)

	authorID := uuid.New()

	average, err := repo.AverageForAuthor(context.Background(), authorID)
	require.NoError(t, err)
	assert.Nil(t, average)

	first := insertTestRecipe(t, db, authorID)
	second := insertTestRecipe(t, db, authorID)
	deleted := insertTestRecipe(t, db, authorID)
	require.NoError(t, db.Exec(`UPDATE recipes SET deleted_at = now() WHERE id = ?`, deleted).Error)

	rateAs(t, repo, uuid.New(), first, 2)
	rateAs(t, repo, uuid.New(), second, 4)
	rateAs(t, repo, uuid.New(), deleted, 0)

	average, err = repo.AverageForAuthor(context.Background(), authorID)

	require.NoError(t, err)
	require.NotNil(t, average)
	assert.InDelta(t, 3.0, *average, 1e-9)
}
