package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/service"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockMealService is a mock implementation of the MealService interface
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) LogMeal(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	args := m.Called(ctx, userID, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) ListMeals(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Meal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, mealID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *MockMealService) DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*service.DailySummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DailySummary), args.Error(1)
}

// MockActivityService is a mock implementation of the ActivityService interface
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) LogActivity(ctx context.Context, userID uuid.UUID, req *types.LogActivityRequest) (*models.ActivityLog, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActivityLog), args.Error(1)
}

func (m *MockActivityService) GetActivity(ctx context.Context, userID uuid.UUID, date time.Time) (*models.ActivityLog, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActivityLog), args.Error(1)
}

func (m *MockActivityService) ListActivity(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.ActivityLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

// MockAppointmentService is a mock implementation of the AppointmentService interface
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) CreateAppointment(ctx context.Context, userID uuid.UUID, req *types.CreateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) GetAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, userID, apptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) ListAppointments(ctx context.Context, userID uuid.UUID, upcomingOnly bool) ([]models.Appointment, error) {
	args := m.Called(ctx, userID, upcomingOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) UpdateAppointment(ctx context.Context, userID, apptID uuid.UUID, req *types.UpdateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, userID, apptID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) CancelAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, userID, apptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) DeleteAppointment(ctx context.Context, userID, apptID uuid.UUID) error {
	args := m.Called(ctx, userID, apptID)
	return args.Error(0)
}
