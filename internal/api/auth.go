package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/middleware"
	"github.com/mealfinder/backend/internal/models"
	"github.com/mealfinder/backend/internal/service"
	"github.com/mealfinder/backend/internal/types"
)

type AuthHandler struct {
	auth      *service.AuthService
	tokens    *service.TokenService
	favorites *service.FavoriteService
}

func NewAuthHandler(auth *service.AuthService, tokens *service.TokenService, favorites *service.FavoriteService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, favorites: favorites}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)

		protected := auth.Group("", middleware.AuthMiddleware(h.tokens))
		protected.GET("/profile", h.GetProfile)
		protected.GET("/verify", h.VerifyToken)
	}
}

// userPayload is the user dict returned by auth endpoints.
func (h *AuthHandler) userPayload(c *gin.Context, user *models.User) gin.H {
	count, err := h.favorites.Count(c.Request.Context(), user.ID)
	if err != nil {
		count = 0
	}
	return gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"created_at":      user.CreatedAt.Format(time.RFC3339),
		"favorites_count": count,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing required fields: username, email, password"))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "User registered successfully",
		"user":          h.userPayload(c, user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("missing username/email and password"))
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"user":          h.userPayload(c, user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Refresh mints a new access token from a Bearer refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, apperror.Auth("missing or malformed authorization header"))
		return
	}

	access, err := h.tokens.RefreshAccess(token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	user, err := h.auth.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": h.userPayload(c, user)})
}

func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return
	}

	user, err := h.auth.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token is valid",
		"user":    h.userPayload(c, user),
	})
}
