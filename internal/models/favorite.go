package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a bookmarked recipe. RecipeID refers to the upstream
// provider; name and image are a snapshot taken when the row was created
// and are not refreshed if the provider record changes later.
type Favorite struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_recipe" json:"-"`
	RecipeID    string    `gorm:"size:50;not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	RecipeName  string    `gorm:"size:200;not null" json:"recipe_name"`
	RecipeImage string    `gorm:"size:500" json:"recipe_image"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
