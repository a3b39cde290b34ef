package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ketoplate/backend/config"
	"github.com/ketoplate/backend/internal/types"
)

// defaultMinProtein is applied when the caller does not constrain protein.
const defaultMinProtein = 15

// vegetableKeywords drive the rough vegetable-servings estimate on
// normalized recipes. Two matching ingredients count as one serving.
var vegetableKeywords = []string{
	"spinach", "kale", "lettuce", "cabbage", "broccoli", "cauliflower",
	"asparagus", "zucchini", "cucumber", "celery", "mushroom", "pepper",
	"tomato", "onion", "carrot",
}

// SpoonacularClient talks to the Spoonacular recipe search API.
type SpoonacularClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewSpoonacularClient creates a client from the loaded configuration.
func NewSpoonacularClient(cfg *config.Config) *SpoonacularClient {
	return &SpoonacularClient{
		apiKey:     cfg.SpoonacularAPIKey,
		apiURL:     cfg.SpoonacularAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Raw provider shapes. Only the fields the normalizer reads are declared;
// everything else in the provider payload is ignored.
type rawNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type rawIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type rawStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

type rawRecipe struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Image     string `json:"image"`
	SourceURL string `json:"sourceUrl"`
	Nutrition struct {
		Nutrients []rawNutrient `json:"nutrients"`
	} `json:"nutrition"`
	ExtendedIngredients  []rawIngredient `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []rawStep `json:"steps"`
	} `json:"analyzedInstructions"`
}

type searchResponse struct {
	Results []rawRecipe `json:"results"`
}

type providerError struct {
	Message string `json:"message"`
}

// SearchRecipes issues one GET to the provider with nutrition and
// ingredient data requested inline, so no follow-up call per recipe is
// needed. A non-2xx response is a hard failure carrying the HTTP status
// and whatever message the provider supplied.
func (c *SpoonacularClient) SearchRecipes(ctx context.Context, constraints types.SearchConstraints) ([]types.NormalizedRecipe, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("addRecipeNutrition", "true")
	q.Set("fillIngredients", "true")

	minProtein := constraints.MinProtein
	if minProtein <= 0 {
		minProtein = defaultMinProtein
	}
	q.Set("minProtein", strconv.Itoa(minProtein))

	if constraints.MaxCalories > 0 {
		q.Set("maxCalories", strconv.Itoa(constraints.MaxCalories))
	}
	if constraints.MaxCarbs > 0 {
		q.Set("maxCarbs", strconv.Itoa(constraints.MaxCarbs))
	}
	if constraints.Diet != "" {
		q.Set("diet", constraints.Diet)
	}
	if constraints.Number > 0 {
		q.Set("number", strconv.Itoa(constraints.Number))
	}
	if constraints.Offset > 0 {
		q.Set("offset", strconv.Itoa(constraints.Offset))
	}
	if constraints.Query != "" {
		q.Set("query", constraints.Query)
	}
	if len(constraints.Intolerances) > 0 {
		q.Set("intolerances", strings.Join(constraints.Intolerances, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Message != "" {
			return nil, fmt.Errorf("recipe search api error (%d): %s", resp.StatusCode, pe.Message)
		}
		return nil, fmt.Errorf("recipe search api error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode recipe search response: %w", err)
	}

	recipes := make([]types.NormalizedRecipe, 0, len(sr.Results))
	for _, raw := range sr.Results {
		recipes = append(recipes, normalizeRecipe(raw))
	}
	return recipes, nil
}

// normalizeRecipe converts a raw provider record into the internal shape,
// defaulting every missing field explicitly.
func normalizeRecipe(raw rawRecipe) types.NormalizedRecipe {
	ingredients := make([]types.RecipeIngredient, 0, len(raw.ExtendedIngredients))
	for _, ing := range raw.ExtendedIngredients {
		ingredients = append(ingredients, types.RecipeIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	var instructions []types.InstructionStep
	for _, block := range raw.AnalyzedInstructions {
		for _, step := range block.Steps {
			instructions = append(instructions, types.InstructionStep{
				Number: step.Number,
				Step:   step.Step,
			})
		}
	}

	return types.NormalizedRecipe{
		ID:          strconv.Itoa(raw.ID),
		Title:       raw.Title,
		Description: raw.Summary,
		Image:       raw.Image,
		SourceURL:   raw.SourceURL,
		Nutrition: types.Nutrition{
			Calories: nutrientAmount(raw.Nutrition.Nutrients, "Calories"),
			Protein:  nutrientAmount(raw.Nutrition.Nutrients, "Protein"),
			Carbs:    nutrientAmount(raw.Nutrition.Nutrients, "Carbohydrates"),
			Fat:      nutrientAmount(raw.Nutrition.Nutrients, "Fat"),
		},
		Ingredients:       ingredients,
		Instructions:      instructions,
		VegetableServings: estimateVegetableServings(ingredients),
		Difficulty:        estimateDifficulty(len(instructions), len(ingredients)),
	}
}

// nutrientAmount picks a named nutrient out of the provider's nutrient
// list; a missing entry defaults to 0.
func nutrientAmount(nutrients []rawNutrient, name string) float64 {
	for _, n := range nutrients {
		if n.Name == name {
			return n.Amount
		}
	}
	return 0
}

// estimateVegetableServings counts vegetable-keyword ingredients and
// treats every two of them as one serving, rounded up.
func estimateVegetableServings(ingredients []types.RecipeIngredient) int {
	count := 0
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		for _, kw := range vegetableKeywords {
			if strings.Contains(name, kw) {
				count++
				break
			}
		}
	}
	return int(math.Ceil(float64(count) / 2))
}

// estimateDifficulty buckets a recipe purely by counts; ties resolve to
// the coarser bucket.
func estimateDifficulty(steps, ingredients int) string {
	if steps <= 5 && ingredients <= 7 {
		return types.DifficultyEasy
	}
	if steps <= 10 && ingredients <= 12 {
		return types.DifficultyMedium
	}
	return types.DifficultyHard
}
