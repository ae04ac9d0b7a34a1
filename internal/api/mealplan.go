package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/middleware"
	"github.com/mealfinder/backend/internal/models"
	"github.com/mealfinder/backend/internal/service"
	"github.com/mealfinder/backend/internal/types"
)

type MealPlanHandler struct {
	plans  *service.MealPlanService
	tokens *service.TokenService
}

func NewMealPlanHandler(plans *service.MealPlanService, tokens *service.TokenService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, tokens: tokens}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans", middleware.AuthMiddleware(h.tokens))
	{
		plans.GET("", h.List)
		plans.POST("", h.Create)
	}
}

// planPayload renders the planned date as a bare calendar date.
func planPayload(plan *models.MealPlan) gin.H {
	return gin.H{
		"id":           plan.ID,
		"recipe_id":    plan.RecipeID,
		"recipe_name":  plan.RecipeName,
		"recipe_image": plan.RecipeImage,
		"planned_date": plan.PlannedDate.Format("2006-01-02"),
		"meal_type":    plan.MealType,
		"created_at":   plan.CreatedAt.Format(time.RFC3339),
	}
}

func (h *MealPlanHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	plans, err := h.plans.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(plans))
	for i := range plans {
		payload = append(payload, planPayload(&plans[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d meal plans", len(plans)),
		"data":    payload,
		"count":   len(plans),
	})
}

func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("recipe_id, planned_date and meal_type are required"))
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), userID, req.RecipeID, req.PlannedDate, req.MealType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal plan created successfully",
		"data":    planPayload(plan),
	})
}
