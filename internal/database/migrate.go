package database

import (
	"gorm.io/gorm"

	"github.com/mealfinder/backend/internal/models"
)

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.MealPlan{},
	)
}
