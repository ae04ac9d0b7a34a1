package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mealfinder/backend/config"
	"github.com/mealfinder/backend/internal/api"
	"github.com/mealfinder/backend/internal/testhelpers"
)

// setupAPI builds the full route tree over an in-memory database and a
// fake recipe provider serving the given routes.
func setupAPI(t *testing.T, routes map[string]any) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	provider := testhelpers.NewProviderServer(t, routes)

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		MealDBBaseURL:   provider.URL,
		ProviderTimeout: 5 * time.Second,
	}

	router := gin.New()
	api.RegisterRoutes(router, db, cfg)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerUser registers a fresh user and returns the issued token pair.
func registerUser(t *testing.T, router *gin.Engine, username, email string) (string, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}
