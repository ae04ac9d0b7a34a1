package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MealFixture is a minimal full provider record for lookups.
func MealFixture(id, name string) map[string]any {
	return map[string]any{
		"idMeal":          id,
		"strMeal":         name,
		"strCategory":     "Seafood",
		"strArea":         "Japanese",
		"strInstructions": "Cook it.",
		"strMealThumb":    "https://example.com/" + id + ".jpg",
		"strTags":         "Fish,Quick",
		"strYoutube":      "https://youtube.com/watch?v=" + id,
		"strSource":       "https://example.com/recipes/" + id,
		"strIngredient1":  "Salmon",
		"strMeasure1":     "200g",
		"strIngredient2":  "Soy Sauce",
		"strMeasure2":     "2 tbsp",
	}
}

// NewProviderServer fakes the upstream recipe API. The routes map keys
// are provider paths ("/lookup.php", "/search.php", ...) and the values
// are the JSON bodies to serve. Unrouted paths return {"meals": null},
// the provider's empty result.
func NewProviderServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := routes[r.URL.Path]
		if !ok {
			body = map[string]any{"meals": nil}
		}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("failed to encode provider response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
