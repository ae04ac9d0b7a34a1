package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	router := setupAPI(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "chef",
		"email":    "Chef@Example.com",
		"password": "secret123",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "chef", user["username"])
	assert.Equal(t, "chef@example.com", user["email"])
	assert.Equal(t, float64(0), user["favorites_count"])
}

func TestRegisterValidationErrors(t *testing.T) {
	router := setupAPI(t, nil)

	cases := []struct {
		name    string
		payload gin.H
	}{
		{"missing fields", gin.H{"username": "chef"}},
		{"short username", gin.H{"username": "ab", "email": "a@b.com", "password": "secret123"}},
		{"short password", gin.H{"username": "chef", "email": "a@b.com", "password": "12345"}},
		{"bad email", gin.H{"username": "chef", "email": "not-an-email", "password": "secret123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/auth/register", tc.payload, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeBody(t, w), "error")
		})
	}
}

func TestRegisterConflict(t *testing.T) {
	router := setupAPI(t, nil)
	registerUser(t, router, "chef", "chef@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "chef",
		"email":    "other@example.com",
		"password": "secret123",
	}, "")

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username or email already exists", decodeBody(t, w)["error"])
}

func TestLoginEndpoint(t *testing.T) {
	router := setupAPI(t, nil)
	registerUser(t, router, "chef", "chef@example.com")

	for _, identifier := range []string{"chef", "chef@example.com", "CHEF@example.com"} {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username_or_email": identifier,
			"password":          "secret123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, "identifier %q: %s", identifier, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "Login successful", body["message"])
		assert.NotEmpty(t, body["access_token"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupAPI(t, nil)
	registerUser(t, router, "chef", "chef@example.com")

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username_or_email": "chef",
		"password":          "wrong-password",
	}, "")
	unknownUser := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username_or_email": "nobody",
		"password":          "secret123",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Same message either way, so callers can't probe which accounts exist.
	assert.Equal(t, decodeBody(t, wrongPassword)["error"], decodeBody(t, unknownUser)["error"])
}

func TestRefreshEndpoint(t *testing.T) {
	router := setupAPI(t, nil)
	access, refresh := registerUser(t, router, "chef", "chef@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil, refresh)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	newAccess, _ := decodeBody(t, w)["access_token"].(string)
	assert.NotEmpty(t, newAccess)

	// An access token must not pass for a refresh token.
	w = doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil, access)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	router := setupAPI(t, nil)
	access, _ := registerUser(t, router, "chef", "chef@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/auth/profile", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "chef", user["username"])

	w = doJSON(t, router, http.MethodGet, "/api/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyEndpoint(t *testing.T) {
	router := setupAPI(t, nil)
	access, refresh := registerUser(t, router, "chef", "chef@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/auth/verify", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Token is valid", decodeBody(t, w)["message"])

	// Refresh tokens are not accepted on protected routes.
	w = doJSON(t, router, http.MethodGet, "/api/auth/verify", nil, refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
