package service

import (
	"strings"

	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
)

// FilterPolicy holds every tunable of the recipe eligibility decision.
// The thresholds were tuned against the clinic's plan rather than derived
// from a formal model, so they live here instead of inside the matching
// logic.
type FilterPolicy struct {
	// CarbCeilingGrams rejects a recipe outright when its per-serving
	// carbs exceed it, before any ingredient analysis.
	CarbCeilingGrams float64
	// MinAllowedRatio is the fraction of ingredients that must classify
	// as allowed for the recipe to pass.
	MinAllowedRatio float64
	// SmallAmountThreshold treats ingredients at or below this declared
	// amount as garnish and lets them through.
	SmallAmountThreshold float64
	// DenyList terms mark an ingredient as not allowed; checked first.
	DenyList []string
	// AllowList terms mark an ingredient as allowed; checked after DenyList.
	AllowList []string
}

// DefaultFilterPolicy returns the keto-style plan policy the app ships with.
func DefaultFilterPolicy() FilterPolicy {
	return FilterPolicy{
		CarbCeilingGrams:     10,
		MinAllowedRatio:      0.7,
		SmallAmountThreshold: 2,
		DenyList: []string{
			"bread", "pasta", "rice", "flour", "sugar", "wheat", "corn",
			"potato", "cereal", "oat", "grain", "tortilla", "chip",
			"cracker", "cookie", "cake", "pastry", "noodle", "starch",
			"syrup", "honey", "molasses", "quinoa", "couscous", "barley",
			"millet", "rye",
		},
		AllowList: []string{
			// proteins
			"meat", "fish", "chicken", "turkey", "beef", "pork", "lamb",
			"egg", "salmon", "tuna", "shrimp", "bacon", "sausage",
			// fats
			"oil", "butter", "cream", "cheese", "avocado", "coconut",
			"olive oil", "ghee", "lard",
			// low-carb vegetables
			"spinach", "kale", "lettuce", "cabbage", "broccoli",
			"cauliflower", "asparagus", "zucchini", "cucumber", "celery",
			"mushroom",
			// seasonings and condiments
			"salt", "pepper", "garlic", "basil", "oregano", "thyme",
			"rosemary", "paprika", "cumin", "cinnamon", "vanilla",
			"mustard", "vinegar", "mayonnaise", "parsley", "cilantro",
			"dill", "ginger", "turmeric", "chili",
		},
	}
}

// IsAllowed decides whether a recipe conforms to the diet plan. A nil
// allowedFoods slice means the catalog could not be established at all and
// rejects the recipe; an empty one simply skips the catalog rule. The
// function is pure: identical inputs always produce the same verdict.
func (p FilterPolicy) IsAllowed(recipe types.NormalizedRecipe, allowedFoods []models.AllowedFood) bool {
	// An unknown composition cannot be verified safe.
	if len(recipe.Ingredients) == 0 || allowedFoods == nil {
		return false
	}

	if recipe.Nutrition.Carbs > p.CarbCeilingGrams {
		return false
	}

	allowed := 0
	for _, ing := range recipe.Ingredients {
		if p.ingredientAllowed(ing, allowedFoods) {
			allowed++
		}
	}

	ratio := float64(allowed) / float64(len(recipe.Ingredients))
	return ratio >= p.MinAllowedRatio
}

// ingredientAllowed classifies a single ingredient; the first matching
// rule wins.
func (p FilterPolicy) ingredientAllowed(ing types.RecipeIngredient, allowedFoods []models.AllowedFood) bool {
	name := strings.ToLower(ing.Name)

	for _, term := range p.DenyList {
		if strings.Contains(name, term) {
			return false
		}
	}

	for _, term := range p.AllowList {
		if strings.Contains(name, term) {
			return true
		}
	}

	for _, food := range allowedFoods {
		if food.Category != models.CategoryProtein && food.Category != models.CategoryVegetable {
			continue
		}
		if food.Name == "" {
			continue
		}
		if strings.Contains(name, strings.ToLower(food.Name)) {
			return true
		}
	}

	// Tiny declared amounts are treated as garnish.
	return ing.Amount <= p.SmallAmountThreshold
}
