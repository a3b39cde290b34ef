package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, body io.Reader, filename, contentType string) (string, error)
}

// IPreferenceService defines the interface for dietary target operations
type IPreferenceService interface {
	ResolvePreferences(ctx context.Context, userID uuid.UUID) *models.DietPreference
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*models.DietPreference, error)
}

// IMealService defines the interface for meal logging operations
type IMealService interface {
	LogMeal(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error)
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*DailySummary, error)
}

// IActivityService defines the interface for water/exercise tracking
type IActivityService interface {
	LogActivity(ctx context.Context, userID uuid.UUID, req *types.LogActivityRequest) (*models.ActivityLog, error)
	GetActivity(ctx context.Context, userID uuid.UUID, date time.Time) (*models.ActivityLog, error)
	ListActivity(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.ActivityLog, error)
}

// IAppointmentService defines the interface for appointment scheduling
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, userID uuid.UUID, req *types.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error)
	ListAppointments(ctx context.Context, userID uuid.UUID, upcomingOnly bool) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, userID, apptID uuid.UUID, req *types.UpdateAppointmentRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, userID, apptID uuid.UUID) error
}

// IRecommendationService defines the interface for the recommendation pipeline
type IRecommendationService interface {
	GetPersonalizedRecommendations(ctx context.Context, userID uuid.UUID) ([]types.NormalizedRecipe, *models.DietPreference, error)
}

var (
	_ IAuthService           = (*AuthService)(nil)
	_ IProfileService        = (*ProfileService)(nil)
	_ IPreferenceService     = (*PreferenceService)(nil)
	_ IMealService           = (*MealService)(nil)
	_ IActivityService       = (*ActivityService)(nil)
	_ IAppointmentService    = (*AppointmentService)(nil)
	_ IRecommendationService = (*RecommendationService)(nil)
	_ RecipeSearcher         = (*SpoonacularClient)(nil)
)
