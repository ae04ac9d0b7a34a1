package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal slots a plan entry can occupy. Several recipes may share the same
// (date, slot); no uniqueness is enforced.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// MealPlan assigns a recipe to a calendar date and meal slot. Like
// Favorite it carries a denormalized snapshot of the recipe.
type MealPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	RecipeID    string    `gorm:"size:50;not null" json:"recipe_id"`
	RecipeName  string    `gorm:"size:200;not null" json:"recipe_name"`
	RecipeImage string    `gorm:"size:500" json:"recipe_image"`
	PlannedDate time.Time `gorm:"type:date;not null" json:"planned_date"`
	MealType    string    `gorm:"size:20;not null" json:"meal_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
