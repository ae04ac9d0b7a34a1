package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/models"
	"github.com/mealfinder/backend/internal/types"
)

// RecipeGateway is the slice of the recipe provider the ledgers need:
// resolving a recipe id into display metadata before a snapshot insert.
type RecipeGateway interface {
	GetByID(ctx context.Context, recipeID string) (*types.Recipe, error)
}

// ToggleResult reports which way a toggle went.
type ToggleResult struct {
	Action     string
	IsFavorite bool
	Favorite   *models.Favorite
}

// ActivityDay is one bucket of the recent-activity stat.
type ActivityDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// FavoriteStats summarizes a user's favorites.
type FavoriteStats struct {
	TotalFavorites int64         `json:"total_favorites"`
	RecentActivity []ActivityDay `json:"recent_activity"`
}

// FavoriteService is the per-user ledger of bookmarked recipes. The
// (user_id, recipe_id) unique index enforces at-most-one entry per pair;
// concurrent duplicate inserts lose the race there and surface as
// conflicts.
type FavoriteService struct {
	db      *gorm.DB
	recipes RecipeGateway
}

func NewFavoriteService(db *gorm.DB, recipes RecipeGateway) *FavoriteService {
	return &FavoriteService{db: db, recipes: recipes}
}

// List returns the user's favorites, most recent first.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to list favorites", err)
	}
	return favorites, nil
}

// Add bookmarks a recipe. The provider lookup comes first: it validates
// the id and supplies the name/image snapshot. The external call has no
// side effect of its own, so a crash between lookup and insert leaves no
// orphaned state.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, recipeID string) (*models.Favorite, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	favorite := models.Favorite{
		UserID:      userID,
		RecipeID:    recipeID,
		RecipeName:  recipe.Name,
		RecipeImage: recipe.Image,
	}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("recipe is already in your favorites")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to add favorite", err)
	}
	return &favorite, nil
}

// Remove deletes the matching row if present.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, recipeID string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to remove favorite", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("recipe not found in favorites")
	}
	return nil
}

// Status reports whether the recipe is bookmarked, with the row when it
// is. Absence is not an error.
func (s *FavoriteService) Status(ctx context.Context, userID uuid.UUID, recipeID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to check favorite status", err)
	}
	return &favorite, nil
}

// Toggle removes the favorite if present, adds it otherwise. The
// read-then-write is not serialized against concurrent toggles; a lost
// race lands on the unique index and comes back as a conflict.
func (s *FavoriteService) Toggle(ctx context.Context, userID uuid.UUID, recipeID string) (*ToggleResult, error) {
	existing, err := s.Status(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.Remove(ctx, userID, recipeID); err != nil {
			return nil, err
		}
		return &ToggleResult{Action: "removed", IsFavorite: false}, nil
	}

	favorite, err := s.Add(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Action: "added", IsFavorite: true, Favorite: favorite}, nil
}

// Count returns the user's total number of favorites.
func (s *FavoriteService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Wrap(apperror.KindInternal, "failed to count favorites", err)
	}
	return count, nil
}

// Stats returns the total count plus per-day counts for the 7 most
// recent distinct activity dates, newest first.
func (s *FavoriteService) Stats(ctx context.Context, userID uuid.UUID) (*FavoriteStats, error) {
	total, err := s.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Postgres dates scan into time.Time, not string, so format in SQL.
	dateExpr := "DATE(created_at)"
	if s.db.Dialector.Name() == "postgres" {
		dateExpr = "TO_CHAR(created_at, 'YYYY-MM-DD')"
	}

	activity := []ActivityDay{}
	err = s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Select(dateExpr+" AS date, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group(dateExpr).
		Order(dateExpr + " DESC").
		Limit(7).
		Scan(&activity).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to aggregate favorite activity", err)
	}

	return &FavoriteStats{TotalFavorites: total, RecentActivity: activity}, nil
}
