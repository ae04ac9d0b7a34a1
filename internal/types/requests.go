package types

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest accepts either a username or an email in the first field.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// FavoriteRequest is the request body for the add and toggle endpoints.
type FavoriteRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
}

// MealPlanRequest is the request body for creating a meal plan entry.
type MealPlanRequest struct {
	RecipeID    string `json:"recipe_id" binding:"required"`
	PlannedDate string `json:"planned_date" binding:"required"`
	MealType    string `json:"meal_type" binding:"required"`
}
