package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeSearcher is a mock implementation of the RecipeSearcher interface
type MockRecipeSearcher struct {
	mock.Mock
}

func (m *MockRecipeSearcher) SearchRecipes(ctx context.Context, constraints types.SearchConstraints) ([]types.NormalizedRecipe, error) {
	args := m.Called(ctx, constraints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.NormalizedRecipe), args.Error(1)
}

// MockRecommendationService is a mock implementation of the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) GetPersonalizedRecommendations(ctx context.Context, userID uuid.UUID) ([]types.NormalizedRecipe, *models.DietPreference, error) {
	args := m.Called(ctx, userID)
	var recipes []types.NormalizedRecipe
	if args.Get(0) != nil {
		recipes = args.Get(0).([]types.NormalizedRecipe)
	}
	var prefs *models.DietPreference
	if args.Get(1) != nil {
		prefs = args.Get(1).(*models.DietPreference)
	}
	return recipes, prefs, args.Error(2)
}
