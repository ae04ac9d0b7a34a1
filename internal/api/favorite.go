package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/middleware"
	"github.com/mealfinder/backend/internal/service"
	"github.com/mealfinder/backend/internal/types"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
	tokens    *service.TokenService
}

func NewFavoriteHandler(favorites *service.FavoriteService, tokens *service.TokenService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, tokens: tokens}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites", middleware.AuthMiddleware(h.tokens))
	{
		favorites.GET("", h.List)
		favorites.POST("/add", h.Add)
		favorites.DELETE("/remove/:recipe_id", h.Remove)
		favorites.GET("/check/:recipe_id", h.CheckStatus)
		favorites.POST("/toggle", h.Toggle)
		favorites.GET("/stats", h.Stats)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d favorite recipes", len(favorites)),
		"data":    favorites,
		"count":   len(favorites),
	})
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("recipe ID is required"))
		return
	}

	favorite, err := h.favorites.Add(c.Request.Context(), userID, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe added to favorites successfully",
		"data":    favorite,
	})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, c.Param("recipe_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe removed from favorites successfully",
	})
}

func (h *FavoriteHandler) CheckStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	recipeID := c.Param("recipe_id")
	favorite, err := h.favorites.Status(c.Request.Context(), userID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{
		"recipe_id":     recipeID,
		"is_favorite":   favorite != nil,
		"favorite_data": nil,
	}
	if favorite != nil {
		payload["favorite_data"] = favorite
	}
	c.JSON(http.StatusOK, payload)
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("recipe ID is required"))
		return
	}

	result, err := h.favorites.Toggle(c.Request.Context(), userID, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Action == "removed" {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Recipe removed from favorites",
			"action":      result.Action,
			"is_favorite": result.IsFavorite,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Recipe added to favorites",
		"action":      result.Action,
		"is_favorite": result.IsFavorite,
		"data":        result.Favorite,
	})
}

func (h *FavoriteHandler) Stats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	stats, err := h.favorites.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites statistics retrieved successfully",
		"data":    stats,
	})
}
