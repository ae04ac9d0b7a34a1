package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/middleware"
)

type stubVerifier struct {
	userID uuid.UUID
	err    error
}

func (v *stubVerifier) VerifyAccess(token string) (uuid.UUID, error) {
	if v.err != nil {
		return uuid.Nil, v.err
	}
	return v.userID, nil
}

func setupRouter(verifier middleware.TokenVerifier) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var seen uuid.UUID
	router.GET("/protected", middleware.AuthMiddleware(verifier), func(c *gin.Context) {
		id, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		seen = id
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, &seen
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	router, seen := setupRouter(&stubVerifier{userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := setupRouter(&stubVerifier{userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization header")
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router, _ := setupRouter(&stubVerifier{userID: uuid.New()})

	for _, header := range []string{"some-token", "Basic some-token", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router, _ := setupRouter(&stubVerifier{err: apperror.Auth("invalid or expired token")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}
