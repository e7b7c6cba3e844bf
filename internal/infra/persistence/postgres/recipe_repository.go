package postgres

import (
	"context"
	"sort"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a single recipe with its element lines preloaded.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByAuthor retrieves all recipes published by a user, newest first.
func (repo *recipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by author")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Ingredients retrieves the ordered ingredient lines of a recipe. A recipe
// with no ingredient rows still yields an empty slice rather than an error,
// so the existence check runs first.
func (repo *recipeRepository) Ingredients(ctx context.Context, recipeID uuid.UUID) ([]string, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check recipe existence")
	}
	if count == 0 {
		return nil, repository.ErrRecipeNotFound
	}

	var lines []string
	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeElementModel{}).
		Where("recipe_id = ? AND kind = ?", recipeID, model.ElementIngredient).
		Order("position ASC").
		Pluck("text", &lines).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recipe ingredients")
	}

	return lines, nil
}

// Create persists a new recipe with its element lines in one insert.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreFailureError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update modifies an existing recipe, replacing its element lines.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.RecipeModel{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"name":        recipeM.Name,
				"is_public":   recipeM.IsPublic,
				"difficulty":  recipeM.Difficulty,
				"portions":    recipeM.Portions,
				"image_url":   recipeM.ImageURL,
				"category_id": recipeM.CategoryID,
			})
		if result.Error != nil {
			return domainerrors.NewStoreFailureError(result.Error, "failed to update recipe")
		}
		if result.RowsAffected == 0 {
			return repository.ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&model.RecipeElementModel{}).Error; err != nil {
			return domainerrors.NewStoreFailureError(err, "failed to replace recipe elements")
		}

		if len(recipeM.Elements) > 0 {
			for _, element := range recipeM.Elements {
				element.RecipeID = recipe.ID
			}
			if err := tx.Create(&recipeM.Elements).Error; err != nil {
				return domainerrors.NewStoreFailureError(err, "failed to replace recipe elements")
			}
		}

		return nil
	})
}

// Delete removes a recipe and its element lines.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).
			Delete(&model.RecipeElementModel{}).Error; err != nil {
			return domainerrors.NewStoreFailureError(err, "failed to delete recipe elements")
		}

		result := tx.Where("id = ?", id).Delete(&model.RecipeModel{})
		if result.Error != nil {
			return domainerrors.NewStoreFailureError(result.Error, "failed to delete recipe")
		}
		if result.RowsAffected == 0 {
			return repository.ErrRecipeNotFound
		}

		return nil
	})
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		Name:       data.Name,
		IsPublic:   data.IsPublic,
		Difficulty: data.Difficulty,
		Portions:   data.Portions,
		ImageURL:   data.ImageURL,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	elements := make([]*model.RecipeElementModel, len(data.Elements))
	copy(elements, data.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Position < elements[j].Position
	})

	for _, element := range elements {
		switch element.Kind {
		case model.ElementIngredient:
			recipe.Ingredients = append(recipe.Ingredients, element.Text)
		case model.ElementUtensil:
			recipe.Utensils = append(recipe.Utensils, element.Text)
		case model.ElementStep:
			recipe.Steps = append(recipe.Steps, element.Text)
		}
	}

	return recipe
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	recipeM := &model.RecipeModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		Name:       data.Name,
		IsPublic:   data.IsPublic,
		Difficulty: data.Difficulty,
		Portions:   data.Portions,
		ImageURL:   data.ImageURL,
		CategoryID: data.CategoryID,
	}

	appendElements := func(kind string, lines []string) {
		for idx, line := range lines {
			recipeM.Elements = append(recipeM.Elements, &model.RecipeElementModel{
				RecipeID: data.ID,
				Kind:     kind,
				Position: idx,
				Text:     line,
			})
		}
	}
	appendElements(model.ElementIngredient, data.Ingredients)
	appendElements(model.ElementUtensil, data.Utensils)
	appendElements(model.ElementStep, data.Steps)

	return recipeM
}
