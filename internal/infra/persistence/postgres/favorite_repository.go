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
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUserAndRecipe retrieves the favorite edge for an exact (user, recipe) pair.
func (repo *favoriteRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// CountForRecipe returns the number of favorite edges targeting a recipe.
func (repo *favoriteRepository) CountForRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}

	return count, nil
}

// FindRecipeIDsByUser retrieves the recipe IDs a user has favorited, newest edge first.
func (repo *favoriteRepository) FindRecipeIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var recipeIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorited recipes")
	}

	return recipeIDs, nil
}

// Create persists a new favorite edge. The (user_id, recipe_id) unique index
// rejects a second edge for the same pair; that rejection is surfaced as
// ErrDuplicateFavorite so the toggle can treat it as "already favorited".
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewStoreFailureError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes a favorite edge by its own identity.
func (repo *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewStoreFailureError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		CreatedAt: data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:       data.ID,
		UserID:   data.UserID,
		RecipeID: data.RecipeID,
	}
}
