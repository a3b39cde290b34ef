package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ketoplate/backend/config"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *SpoonacularClient {
	return NewSpoonacularClient(&config.Config{
		SpoonacularAPIKey: "test-key",
		SpoonacularAPIURL: serverURL,
	})
}

func TestSearchRecipesBuildsQuery(t *testing.T) {
	var captured map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = map[string]string{}
		for key := range r.URL.Query() {
			captured[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecipes(context.Background(), types.SearchConstraints{
		MaxCalories:  667,
		MinProtein:   33,
		Diet:         "high-protein",
		MaxCarbs:     50,
		Number:       10,
		Intolerances: []string{"gluten", "dairy"},
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", captured["apiKey"])
	assert.Equal(t, "true", captured["addRecipeNutrition"])
	assert.Equal(t, "true", captured["fillIngredients"])
	assert.Equal(t, "667", captured["maxCalories"])
	assert.Equal(t, "33", captured["minProtein"])
	assert.Equal(t, "high-protein", captured["diet"])
	assert.Equal(t, "50", captured["maxCarbs"])
	assert.Equal(t, "10", captured["number"])
	assert.Equal(t, "gluten,dairy", captured["intolerances"])
}

func TestSearchRecipesDefaultsMinProtein(t *testing.T) {
	var minProtein string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		minProtein = r.URL.Query().Get("minProtein")
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecipes(context.Background(), types.SearchConstraints{})
	require.NoError(t, err)

	assert.Equal(t, "15", minProtein)
}

func TestSearchRecipesNormalizesResults(t *testing.T) {
	payload := `{
		"results": [{
			"id": 101,
			"title": "Herb Butter Chicken",
			"summary": "A rich skillet dinner.",
			"image": "https://img.example.com/101.jpg",
			"sourceUrl": "https://recipes.example.com/101",
			"nutrition": {
				"nutrients": [
					{"name": "Calories", "amount": 400},
					{"name": "Protein", "amount": 30}
				]
			},
			"extendedIngredients": [
				{"name": "chicken thigh", "amount": 500, "unit": "g"},
				{"name": "butter", "amount": 50, "unit": "g"}
			],
			"analyzedInstructions": [
				{"steps": [
					{"number": 1, "step": "Sear the chicken."},
					{"number": 2, "step": "Baste with butter."}
				]}
			]
		}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	recipes, err := client.SearchRecipes(context.Background(), types.SearchConstraints{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	recipe := recipes[0]
	assert.Equal(t, "101", recipe.ID)
	assert.Equal(t, "Herb Butter Chicken", recipe.Title)
	assert.Equal(t, "A rich skillet dinner.", recipe.Description)
	assert.Equal(t, "https://recipes.example.com/101", recipe.SourceURL)
	assert.Equal(t, 400.0, recipe.Nutrition.Calories)
	assert.Equal(t, 30.0, recipe.Nutrition.Protein)
	// Missing nutrients default to zero, never error.
	assert.Equal(t, 0.0, recipe.Nutrition.Carbs)
	assert.Equal(t, 0.0, recipe.Nutrition.Fat)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "chicken thigh", recipe.Ingredients[0].Name)
	require.Len(t, recipe.Instructions, 2)
	assert.Equal(t, types.DifficultyEasy, recipe.Difficulty)
	assert.Equal(t, 0, recipe.VegetableServings)
}

func TestSearchRecipesProviderErrorWithMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message": "daily quota exhausted"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	recipes, err := client.SearchRecipes(context.Background(), types.SearchConstraints{})

	assert.Nil(t, recipes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe search api error (402)")
	assert.Contains(t, err.Error(), "daily quota exhausted")
}

func TestSearchRecipesProviderErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecipes(context.Background(), types.SearchConstraints{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe search api error (500)")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestEstimateDifficulty(t *testing.T) {
	tests := []struct {
		name        string
		steps       int
		ingredients int
		want        string
	}{
		{"few steps and ingredients", 4, 6, types.DifficultyEasy},
		{"easy boundary", 5, 7, types.DifficultyEasy},
		{"medium by steps", 8, 7, types.DifficultyMedium},
		{"medium boundary", 10, 12, types.DifficultyMedium},
		{"hard by steps", 11, 5, types.DifficultyHard},
		{"hard by ingredients", 3, 20, types.DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateDifficulty(tt.steps, tt.ingredients))
		})
	}
}

func TestEstimateVegetableServings(t *testing.T) {
	assert.Equal(t, 0, estimateVegetableServings(nil))
	assert.Equal(t, 1, estimateVegetableServings([]types.RecipeIngredient{
		ing("baby spinach", 100),
	}))
	assert.Equal(t, 1, estimateVegetableServings([]types.RecipeIngredient{
		ing("baby spinach", 100),
		ing("red pepper", 80),
	}))
	assert.Equal(t, 2, estimateVegetableServings([]types.RecipeIngredient{
		ing("baby spinach", 100),
		ing("red pepper", 80),
		ing("cherry tomato", 120),
	}))
}
