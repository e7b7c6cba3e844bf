package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Element kinds for recipe element rows.
const (
	ElementIngredient = "ingredient"
	ElementUtensil    = "utensil"
	ElementStep       = "step"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name       string     `gorm:"type:varchar(200);not null"`
	IsPublic   bool       `gorm:"not null;default:true"`
	Difficulty int        `gorm:"not null;default:1;check:difficulty >= 1 AND difficulty <= 5"`
	Portions   int        `gorm:"not null;default:1"`
	ImageURL   string     `gorm:"type:text"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Elements []*RecipeElementModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeElementModel mirrors the 'recipe_elements' table. Ingredients,
// utensils and steps share one ordered child table, distinguished by Kind.
type RecipeElementModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_elements_recipe_kind"`
	Kind     string    `gorm:"type:varchar(12);not null;index:idx_recipe_elements_recipe_kind"`
	Position int       `gorm:"not null"`
	Text     string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeElementModel) TableName() string {
	return "recipe_elements"
}
