package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/service"
	"github.com/mealfinder/backend/internal/types"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/search", h.Search)
		recipes.GET("/filter/ingredient", h.FilterByIngredient)
		recipes.GET("/filter/category", h.FilterByCategory)
		recipes.GET("/filter/area", h.FilterByArea)
		recipes.GET("/categories", h.GetCategories)
		recipes.GET("/areas", h.GetAreas)
		recipes.GET("/random", h.GetRandom)
		recipes.GET("/advanced-search", h.AdvancedSearch)
		recipes.GET("/:id", h.GetRecipe)
	}
}

func (h *RecipeHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, apperror.Validation(`query parameter "q" is required`))
		return
	}

	meals, err := h.recipes.SearchByName(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d recipes", len(meals)),
		"data":    meals,
		"count":   len(meals),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe found",
		"data":    recipe,
	})
}

func (h *RecipeHandler) FilterByIngredient(c *gin.Context) {
	ingredient := strings.TrimSpace(c.Query("ingredient"))
	if ingredient == "" {
		respondError(c, apperror.Validation(`query parameter "ingredient" is required`))
		return
	}

	meals, err := h.recipes.SearchByIngredient(c.Request.Context(), ingredient)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d recipes with %s", len(meals), ingredient),
		"data":    meals,
		"count":   len(meals),
	})
}

func (h *RecipeHandler) FilterByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		respondError(c, apperror.Validation(`query parameter "category" is required`))
		return
	}

	meals, err := h.recipes.FilterByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d %s recipes", len(meals), category),
		"data":    meals,
		"count":   len(meals),
	})
}

func (h *RecipeHandler) FilterByArea(c *gin.Context) {
	area := strings.TrimSpace(c.Query("area"))
	if area == "" {
		respondError(c, apperror.Validation(`query parameter "area" is required`))
		return
	}

	meals, err := h.recipes.FilterByArea(c.Request.Context(), area)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d %s recipes", len(meals), area),
		"data":    meals,
		"count":   len(meals),
	})
}

func (h *RecipeHandler) GetCategories(c *gin.Context) {
	categories, err := h.recipes.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

func (h *RecipeHandler) GetAreas(c *gin.Context) {
	areas, err := h.recipes.GetAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Areas retrieved successfully",
		"data":    areas,
	})
}

func (h *RecipeHandler) GetRandom(c *gin.Context) {
	recipe, err := h.recipes.GetRandom(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Random recipe retrieved successfully",
		"data":    recipe,
	})
}

// AdvancedSearch runs exactly one provider query, picked by priority:
// q, then ingredient, then category, then area. Results are de-duplicated
// by recipe id.
func (h *RecipeHandler) AdvancedSearch(c *gin.Context) {
	ctx := c.Request.Context()

	var meals []types.ProviderMeal
	var err error

	switch {
	case strings.TrimSpace(c.Query("q")) != "":
		meals, err = h.recipes.SearchByName(ctx, strings.TrimSpace(c.Query("q")))
	case strings.TrimSpace(c.Query("ingredient")) != "":
		meals, err = h.recipes.SearchByIngredient(ctx, strings.TrimSpace(c.Query("ingredient")))
	case strings.TrimSpace(c.Query("category")) != "":
		meals, err = h.recipes.FilterByCategory(ctx, strings.TrimSpace(c.Query("category")))
	case strings.TrimSpace(c.Query("area")) != "":
		meals, err = h.recipes.FilterByArea(ctx, strings.TrimSpace(c.Query("area")))
	default:
		respondError(c, apperror.Validation("at least one search parameter is required"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	unique := make([]types.ProviderMeal, 0, len(meals))
	seen := make(map[string]bool, len(meals))
	for _, meal := range meals {
		id := meal["idMeal"]
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, meal)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d recipes", len(unique)),
		"data":    unique,
		"count":   len(unique),
	})
}
