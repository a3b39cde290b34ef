package service

import (
	"testing"

	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func ing(name string, amount float64) types.RecipeIngredient {
	return types.RecipeIngredient{Name: name, Amount: amount, Unit: "g"}
}

func ketoRecipe(carbs float64, ingredients ...types.RecipeIngredient) types.NormalizedRecipe {
	return types.NormalizedRecipe{
		ID:          "1",
		Title:       "test recipe",
		Nutrition:   types.Nutrition{Carbs: carbs, Protein: 25, Calories: 450},
		Ingredients: ingredients,
	}
}

func TestIsAllowedRejectsEmptyIngredients(t *testing.T) {
	policy := DefaultFilterPolicy()
	recipe := ketoRecipe(5)

	assert.False(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedRejectsNilCatalog(t *testing.T) {
	policy := DefaultFilterPolicy()
	recipe := ketoRecipe(5, ing("chicken breast", 500), ing("butter", 50))

	assert.False(t, policy.IsAllowed(recipe, nil))
}

func TestIsAllowedRejectsHighCarbRecipes(t *testing.T) {
	policy := DefaultFilterPolicy()
	recipe := ketoRecipe(10.5, ing("chicken breast", 500), ing("butter", 50))

	assert.False(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedAcceptsCarbCeilingExactly(t *testing.T) {
	policy := DefaultFilterPolicy()
	recipe := ketoRecipe(10, ing("chicken breast", 500), ing("butter", 50))

	assert.True(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedRejectsDenyListedIngredients(t *testing.T) {
	policy := DefaultFilterPolicy()
	recipe := ketoRecipe(5,
		ing("white bread", 100),
		ing("basmati rice", 200),
		ing("brown sugar", 30),
	)

	assert.False(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedDenyListBeatsAllowList(t *testing.T) {
	policy := DefaultFilterPolicy()
	// "rice flour" hits the deny list even though nothing else does.
	recipe := ketoRecipe(5,
		ing("rice flour", 100),
		ing("chicken thigh", 300),
	)

	// 1 of 2 allowed: below the 70% bar.
	assert.False(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedAcceptsMajorityAllowed(t *testing.T) {
	policy := DefaultFilterPolicy()
	// 7 of 10 ingredients classify as allowed, exactly the ratio floor.
	recipe := ketoRecipe(8,
		ing("chicken breast", 500),
		ing("butter", 50),
		ing("spinach", 100),
		ing("heavy cream", 100),
		ing("cheddar cheese", 80),
		ing("olive oil", 15),
		ing("garlic", 10),
		ing("jicama", 120),
		ing("dragonfruit", 90),
		ing("plantain", 150),
	)

	assert.True(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedTreatsTinyAmountsAsGarnish(t *testing.T) {
	policy := DefaultFilterPolicy()
	// Xanthan gum matches nothing but its amount is below the threshold.
	recipe := ketoRecipe(4,
		ing("chicken breast", 500),
		ing("xanthan gum", 0.5),
	)

	assert.True(t, policy.IsAllowed(recipe, []models.AllowedFood{}))
}

func TestIsAllowedUsesCatalogProteinsAndVegetables(t *testing.T) {
	policy := DefaultFilterPolicy()
	catalog := []models.AllowedFood{
		{Name: "tempeh", Category: models.CategoryProtein},
		{Name: "bok choy", Category: models.CategoryVegetable},
	}
	recipe := ketoRecipe(6,
		ing("tempeh", 200),
		ing("bok choy", 150),
	)

	assert.True(t, policy.IsAllowed(recipe, catalog))
}

func TestIsAllowedIgnoresNonProteinNonVegetableCatalogEntries(t *testing.T) {
	policy := DefaultFilterPolicy()
	catalog := []models.AllowedFood{
		{Name: "strawberry", Category: models.CategoryFruit},
	}
	recipe := ketoRecipe(6, ing("strawberry", 300))

	assert.False(t, policy.IsAllowed(recipe, catalog))
}

func TestIsAllowedIsDeterministic(t *testing.T) {
	policy := DefaultFilterPolicy()
	catalog := []models.AllowedFood{{Name: "tempeh", Category: models.CategoryProtein}}
	recipe := ketoRecipe(6, ing("tempeh", 200), ing("butter", 20))

	first := policy.IsAllowed(recipe, catalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, policy.IsAllowed(recipe, catalog))
	}
}
