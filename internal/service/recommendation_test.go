package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/testhelpers"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	mock.Mock
}

func (f *fakeSearcher) SearchRecipes(ctx context.Context, constraints types.SearchConstraints) ([]types.NormalizedRecipe, error) {
	args := f.Called(ctx, constraints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.NormalizedRecipe), args.Error(1)
}

func newRecommendationFixture(t *testing.T) (*RecommendationService, *fakeSearcher, uuid.UUID) {
	db := testhelpers.SetupTestDB(t)
	searcher := &fakeSearcher{}
	svc := NewRecommendationService(NewPreferenceService(db), NewCatalogService(db), searcher)
	return svc, searcher, uuid.New()
}

func TestMapProteinCategoryToDiet(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"very lean", "low-fat"},
		{"Very Lean", "low-fat"},
		{"lean", "high-protein"},
		{"  Lean  ", "high-protein"},
		{"medium fat", "ketogenic"},
		{"MEDIUM FAT", "ketogenic"},
		{"protein alternative", "vegetarian"},
		{"", "balanced"},
		{"something else", "balanced"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, mapProteinCategoryToDiet(tt.category))
		})
	}
}

func TestGetPersonalizedRecommendationsDerivesConstraints(t *testing.T) {
	svc, searcher, userID := newRecommendationFixture(t)

	// Defaults: 2000 kcal, 100g protein, "Lean" category.
	searcher.On("SearchRecipes", mock.Anything, types.SearchConstraints{
		MaxCalories: 667,
		MinProtein:  33,
		Diet:        "high-protein",
		MaxCarbs:    50,
		Number:      10,
	}).Return([]types.NormalizedRecipe{}, nil)

	recipes, prefs, err := svc.GetPersonalizedRecommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, recipes)
	require.NotNil(t, prefs)
	assert.Equal(t, models.DefaultTargetCalories, prefs.TargetCalories)
	searcher.AssertExpectations(t)
}

func TestGetPersonalizedRecommendationsUsesStoredPreferences(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	searcher := &fakeSearcher{}
	svc := NewRecommendationService(NewPreferenceService(db), NewCatalogService(db), searcher)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.DietPreference{
		UserID:                   userID,
		TargetCalories:           1500,
		PreferredProteinCategory: "medium fat",
		DailyProteinTarget:       90,
		DailyVegetableServings:   3,
		DailyFruitServings:       1,
	}).Error)

	searcher.On("SearchRecipes", mock.Anything, types.SearchConstraints{
		MaxCalories: 500,
		MinProtein:  30,
		Diet:        "ketogenic",
		MaxCarbs:    50,
		Number:      10,
	}).Return([]types.NormalizedRecipe{}, nil)

	_, prefs, err := svc.GetPersonalizedRecommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1500, prefs.TargetCalories)
	searcher.AssertExpectations(t)
}

func TestGetPersonalizedRecommendationsPropagatesSearchError(t *testing.T) {
	svc, searcher, userID := newRecommendationFixture(t)

	searchErr := errors.New("recipe search api error (402): daily quota exhausted")
	searcher.On("SearchRecipes", mock.Anything, mock.Anything).Return(nil, searchErr)

	recipes, prefs, err := svc.GetPersonalizedRecommendations(context.Background(), userID)
	assert.Nil(t, recipes)
	assert.Nil(t, prefs)
	assert.Equal(t, searchErr, err)
}

func TestGetPersonalizedRecommendationsFiltersResults(t *testing.T) {
	svc, searcher, userID := newRecommendationFixture(t)

	passing := types.NormalizedRecipe{
		ID:        "1",
		Title:     "Butter Chicken Skillet",
		Nutrition: types.Nutrition{Carbs: 5, Protein: 35},
		Ingredients: []types.RecipeIngredient{
			ing("chicken thigh", 500),
			ing("butter", 50),
			ing("spinach", 100),
		},
	}
	failing := types.NormalizedRecipe{
		ID:        "2",
		Title:     "Penne Arrabbiata",
		Nutrition: types.Nutrition{Carbs: 80, Protein: 12},
		Ingredients: []types.RecipeIngredient{
			ing("penne pasta", 300),
			ing("tomato sauce", 200),
		},
	}
	searcher.On("SearchRecipes", mock.Anything, mock.Anything).
		Return([]types.NormalizedRecipe{passing, failing}, nil)

	recipes, _, err := svc.GetPersonalizedRecommendations(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "1", recipes[0].ID)
}

func TestGetPersonalizedRecommendationsEmptyResultIsValid(t *testing.T) {
	svc, searcher, userID := newRecommendationFixture(t)

	searcher.On("SearchRecipes", mock.Anything, mock.Anything).
		Return([]types.NormalizedRecipe{}, nil)

	recipes, prefs, err := svc.GetPersonalizedRecommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
	assert.NotNil(t, prefs)
}
