package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/models"
)

// MealPlanService assigns recipes to calendar dates and meal slots. It
// mirrors the favorites ledger's snapshot behavior but allows several
// entries per (date, slot).
type MealPlanService struct {
	db      *gorm.DB
	recipes RecipeGateway
}

func NewMealPlanService(db *gorm.DB, recipes RecipeGateway) *MealPlanService {
	return &MealPlanService{db: db, recipes: recipes}
}

func validMealType(mealType string) bool {
	switch mealType {
	case models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner:
		return true
	}
	return false
}

// Create plans a recipe for a date and slot, snapshotting name/image from
// the provider at creation time.
func (s *MealPlanService) Create(ctx context.Context, userID uuid.UUID, recipeID, plannedDate, mealType string) (*models.MealPlan, error) {
	if !validMealType(mealType) {
		return nil, apperror.Validation("meal_type must be one of: breakfast, lunch, dinner")
	}
	date, err := time.Parse("2006-01-02", plannedDate)
	if err != nil {
		return nil, apperror.Validation("planned_date must be in YYYY-MM-DD format")
	}

	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	plan := models.MealPlan{
		UserID:      userID,
		RecipeID:    recipeID,
		RecipeName:  recipe.Name,
		RecipeImage: recipe.Image,
		PlannedDate: date,
		MealType:    mealType,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to create meal plan", err)
	}
	return &plan, nil
}

// List returns the user's meal plans ordered by date, earliest first.
func (s *MealPlanService) List(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("planned_date ASC, created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to list meal plans", err)
	}
	return plans, nil
}
