package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllowedFoodsPrefersReferenceTable(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.AllowedFood{Name: "Chicken", Category: models.CategoryProtein}).Error)
	require.NoError(t, db.Create(&models.AllowedFood{Name: "Spinach", Category: models.CategoryVegetable}).Error)

	foods := svc.LoadAllowedFoods(context.Background())
	require.Len(t, foods, 2)
	names := []string{foods[0].Name, foods[1].Name}
	assert.Contains(t, names, "chicken")
	assert.Contains(t, names, "spinach")
}

func TestLoadAllowedFoodsFallsBackToMealLog(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCatalogService(db)

	meal := models.Meal{
		UserID: uuid.New(),
		Type:   "lunch",
		AteAt:  time.Now(),
		Items: []models.MealItem{
			{FoodName: "Grilled Salmon", Category: models.CategoryProtein},
			{FoodName: "Diet Soda", Category: models.CategoryBeverage},
		},
	}
	require.NoError(t, db.Create(&meal).Error)

	foods := svc.LoadAllowedFoods(context.Background())
	require.Len(t, foods, 1)
	assert.Equal(t, "grilled salmon", foods[0].Name)
	assert.Equal(t, models.CategoryProtein, foods[0].Category)
}

func TestLoadAllowedFoodsDeduplicatesMealLogEntries(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 3; i++ {
		meal := models.Meal{
			UserID: uuid.New(),
			Type:   "dinner",
			AteAt:  time.Now(),
			Items: []models.MealItem{
				{FoodName: "Ribeye Steak", Category: models.CategoryProtein},
			},
		}
		require.NoError(t, db.Create(&meal).Error)
	}

	foods := svc.LoadAllowedFoods(context.Background())
	assert.Len(t, foods, 1)
}

func TestLoadAllowedFoodsEmptySourcesYieldEmptyCatalog(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCatalogService(db)

	foods := svc.LoadAllowedFoods(context.Background())
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
}
