package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mealfinder/backend/config"
	"github.com/mealfinder/backend/internal/database"
	"github.com/mealfinder/backend/internal/service"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe Finder API is running!",
		"status":  "healthy",
	})
}

// ReadinessCheck reports health including database connectivity.
func ReadinessCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Recipe Finder API is running!",
			"status":  "healthy",
		})
	}
}

// RegisterRoutes wires all API routes onto the router.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.GET("/", HealthCheck)
	router.GET("/health", ReadinessCheck(db))

	recipeService := service.NewRecipeService(cfg.MealDBBaseURL, cfg.ProviderTimeout)
	authService := service.NewAuthService(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	favoriteService := service.NewFavoriteService(db, recipeService)
	mealPlanService := service.NewMealPlanService(db, recipeService)

	api := router.Group("/api")
	NewAuthHandler(authService, tokenService, favoriteService).RegisterRoutes(api)
	NewRecipeHandler(recipeService).RegisterRoutes(api)
	NewFavoriteHandler(favoriteService, tokenService).RegisterRoutes(api)
	NewMealPlanHandler(mealPlanService, tokenService).RegisterRoutes(api)
}
