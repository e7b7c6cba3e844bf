package postgres

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Rate records a user's score for a recipe. The (user_id, recipe_id) unique
// index turns a repeated rating into an update of the previous score.
func (repo *ratingRepository) Rate(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewStoreFailureError(err, "failed to record rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// FindByUserAndRecipe retrieves the rating a user gave a recipe.
func (repo *ratingRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// AverageForRecipe computes the mean score of all ratings on a recipe.
// AVG over zero rows is SQL NULL, which scans into a nil pointer; that nil
// is the "never rated" signal and is never collapsed to zero.
func (repo *ratingRepository) AverageForRecipe(ctx context.Context, recipeID uuid.UUID) (*float64, error) {
	var average *float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("AVG(score)").
		Where("recipe_id = ?", recipeID).
		Scan(&average).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute recipe average rating")
	}

	return average, nil
}

// AverageForAuthor computes the mean score across all ratings on a user's
// recipes. Nil means none of their recipes has been rated yet.
func (repo *ratingRepository) AverageForAuthor(ctx context.Context, authorID uuid.UUID) (*float64, error) {
	var average *float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("AVG(ratings.score)").
		Joins("JOIN recipes ON recipes.id = ratings.recipe_id").
		Where("recipes.author_id = ? AND recipes.deleted_at IS NULL", authorID).
		Scan(&average).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute author average rating")
	}

	return average, nil
}

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		Score:     data.Score,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:       data.ID,
		UserID:   data.UserID,
		RecipeID: data.RecipeID,
		Score:    data.Score,
	}
}
