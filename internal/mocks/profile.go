package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, body io.Reader, filename, contentType string) (string, error) {
	args := m.Called(ctx, userID, body, filename, contentType)
	return args.String(0), args.Error(1)
}

// MockPreferenceService is a mock implementation of the PreferenceService interface
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) ResolvePreferences(ctx context.Context, userID uuid.UUID) *models.DietPreference {
	args := m.Called(ctx, userID)
	return args.Get(0).(*models.DietPreference)
}

func (m *MockPreferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*models.DietPreference, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietPreference), args.Error(1)
}
