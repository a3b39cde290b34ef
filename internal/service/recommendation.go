package service

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
)

// Search constraints fixed by the recommendation pipeline.
const (
	mealsPerDay            = 3
	recommendationMaxCarbs = 50
	recommendationCount    = 10
)

// RecipeSearcher issues the outbound recipe search. Satisfied by
// SpoonacularClient; mocked in tests.
type RecipeSearcher interface {
	SearchRecipes(ctx context.Context, constraints types.SearchConstraints) ([]types.NormalizedRecipe, error)
}

// RecommendationService composes the preference resolver, the catalog
// loader, the external search and the eligibility filter into a single
// call producing a filtered recipe list.
type RecommendationService struct {
	preferences *PreferenceService
	catalog     *CatalogService
	searcher    RecipeSearcher
	policy      FilterPolicy
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(preferences *PreferenceService, catalog *CatalogService, searcher RecipeSearcher) *RecommendationService {
	return &RecommendationService{
		preferences: preferences,
		catalog:     catalog,
		searcher:    searcher,
		policy:      DefaultFilterPolicy(),
	}
}

// GetPersonalizedRecommendations resolves the user's targets, searches the
// external provider with per-meal constraints derived from them, and
// filters the results through the diet policy. A search failure is the
// one hard error and propagates to the caller untouched; an empty result
// after filtering is a valid outcome.
func (s *RecommendationService) GetPersonalizedRecommendations(ctx context.Context, userID uuid.UUID) ([]types.NormalizedRecipe, *models.DietPreference, error) {
	prefs := s.preferences.ResolvePreferences(ctx, userID)
	allowedFoods := s.catalog.LoadAllowedFoods(ctx)

	constraints := types.SearchConstraints{
		MaxCalories: int(math.Round(float64(prefs.TargetCalories) / mealsPerDay)),
		MinProtein:  int(math.Round(prefs.DailyProteinTarget / mealsPerDay)),
		Diet:        mapProteinCategoryToDiet(prefs.PreferredProteinCategory),
		MaxCarbs:    recommendationMaxCarbs,
		Number:      recommendationCount,
	}

	recipes, err := s.searcher.SearchRecipes(ctx, constraints)
	if err != nil {
		return nil, nil, err
	}

	filtered := make([]types.NormalizedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		if s.policy.IsAllowed(recipe, allowedFoods) {
			filtered = append(filtered, recipe)
		}
	}

	log.Printf("recommendations: user %s, %d of %d recipes passed the diet policy", userID, len(filtered), len(recipes))
	return filtered, prefs, nil
}

// mapProteinCategoryToDiet maps the stored protein category onto the
// provider's diet label. The category set is open; anything unrecognized
// intentionally maps to the balanced diet.
func mapProteinCategoryToDiet(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "very lean":
		return "low-fat"
	case "lean":
		return "high-protein"
	case "medium fat":
		return "ketogenic"
	case "protein alternative":
		return "vegetarian"
	default:
		return "balanced"
	}
}
