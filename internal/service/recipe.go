package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/types"
)

// maxIngredientSlots is how many numbered ingredient/measure field pairs
// a provider record can carry.
const maxIngredientSlots = 20

// RecipeService talks to the upstream recipe provider and isolates the
// rest of the system from its field naming. List lookups return raw
// provider records; single-record lookups return the normalized Recipe.
type RecipeService struct {
	baseURL string
	client  *http.Client
}

func NewRecipeService(baseURL string, timeout time.Duration) *RecipeService {
	return &RecipeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// providerEnvelope covers both response shapes the provider uses: a
// "meals" array for recipe endpoints and a "categories" array for the
// category listing. Either may be absent or null.
type providerEnvelope struct {
	Meals      []types.ProviderMeal `json:"meals"`
	Categories []types.ProviderMeal `json:"categories"`
}

// SearchByName searches recipes by name and returns raw provider records.
func (s *RecipeService) SearchByName(ctx context.Context, query string) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/search.php", url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// GetByID looks up a single recipe and normalizes it.
func (s *RecipeService) GetByID(ctx context.Context, recipeID string) (*types.Recipe, error) {
	env, err := s.fetch(ctx, "/lookup.php", url.Values{"i": {recipeID}})
	if err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, apperror.NotFound("recipe not found")
	}
	return NormalizeMeal(env.Meals[0]), nil
}

// SearchByIngredient filters recipes by main ingredient.
func (s *RecipeService) SearchByIngredient(ctx context.Context, ingredient string) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/filter.php", url.Values{"i": {ingredient}})
	if err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// FilterByCategory filters recipes by category.
func (s *RecipeService) FilterByCategory(ctx context.Context, category string) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/filter.php", url.Values{"c": {category}})
	if err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// FilterByArea filters recipes by area/cuisine.
func (s *RecipeService) FilterByArea(ctx context.Context, area string) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/filter.php", url.Values{"a": {area}})
	if err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// GetCategories lists all category descriptors.
func (s *RecipeService) GetCategories(ctx context.Context) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/categories.php", nil)
	if err != nil {
		return nil, err
	}
	return env.Categories, nil
}

// GetAreas lists all area descriptors.
func (s *RecipeService) GetAreas(ctx context.Context) ([]types.ProviderMeal, error) {
	env, err := s.fetch(ctx, "/list.php", url.Values{"a": {"list"}})
	if err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// GetRandom fetches one random recipe, normalized.
func (s *RecipeService) GetRandom(ctx context.Context) (*types.Recipe, error) {
	env, err := s.fetch(ctx, "/random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, apperror.NotFound("no random recipe found")
	}
	return NormalizeMeal(env.Meals[0]), nil
}

// fetch performs one provider call. Any transport or decode failure is
// absorbed here and classified as an upstream error with a client-safe
// message; the cause is logged, never returned to the client.
func (s *RecipeService) fetch(ctx context.Context, path string, params url.Values) (*providerEnvelope, error) {
	reqURL := s.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "recipe provider request failed", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("recipe provider request failed")
		return nil, apperror.Wrap(apperror.KindUpstream, "recipe provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.WithFields(log.Fields{"path": path, "status": resp.StatusCode}).Warn("recipe provider returned error status")
		return nil, apperror.Wrap(apperror.KindUpstream, "recipe provider request failed",
			fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	var env providerEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		log.WithError(err).WithField("path", path).Warn("recipe provider response malformed")
		return nil, apperror.Wrap(apperror.KindUpstream, "recipe provider request failed", err)
	}
	return &env, nil
}

// NormalizeMeal converts a raw provider record into the internal Recipe
// shape. Ingredient slots 1..20 are consulted; a slot is kept only when
// its trimmed ingredient name is non-empty and not the literal "null".
// A kept slot's measure collapses to "" under the same rule.
func NormalizeMeal(raw types.ProviderMeal) *types.Recipe {
	ingredients := make([]types.Ingredient, 0, maxIngredientSlots)
	for i := 1; i <= maxIngredientSlots; i++ {
		name := strings.TrimSpace(raw[fmt.Sprintf("strIngredient%d", i)])
		measure := strings.TrimSpace(raw[fmt.Sprintf("strMeasure%d", i)])

		if name == "" || strings.EqualFold(name, "null") {
			continue
		}
		if strings.EqualFold(measure, "null") {
			measure = ""
		}
		ingredients = append(ingredients, types.Ingredient{Ingredient: name, Measure: measure})
	}

	tags := []string{}
	if raw["strTags"] != "" {
		tags = strings.Split(raw["strTags"], ",")
	}

	return &types.Recipe{
		ID:           raw["idMeal"],
		Name:         raw["strMeal"],
		Category:     raw["strCategory"],
		Area:         raw["strArea"],
		Instructions: raw["strInstructions"],
		Image:        raw["strMealThumb"],
		Tags:         tags,
		YouTube:      raw["strYoutube"],
		Ingredients:  ingredients,
		Source:       raw["strSource"],
	}
}
