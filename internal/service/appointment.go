package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// ErrInvalidAppointmentStatus rejects status values outside the known set.
var ErrInvalidAppointmentStatus = errors.New("invalid appointment status")

// AppointmentService handles clinic appointment scheduling.
type AppointmentService struct {
	db *gorm.DB
}

// NewAppointmentService creates a new AppointmentService instance
func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// CreateAppointment books a new appointment
func (s *AppointmentService) CreateAppointment(ctx context.Context, userID uuid.UUID, req *types.CreateAppointmentRequest) (*models.Appointment, error) {
	appt := &models.Appointment{
		UserID:      userID,
		Title:       req.Title,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
		Status:      models.AppointmentScheduled,
	}
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		return nil, err
	}
	return appt, nil
}

// GetAppointment retrieves one appointment owned by the user
func (s *AppointmentService) GetAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", apptID, userID).
		First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListAppointments lists a user's appointments; with upcomingOnly set,
// only future non-cancelled ones, soonest first.
func (s *AppointmentService) ListAppointments(ctx context.Context, userID uuid.UUID, upcomingOnly bool) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if upcomingOnly {
		q = q.Where("scheduled_at >= ? AND status <> ?", time.Now(), models.AppointmentCancelled).
			Order("scheduled_at ASC")
	} else {
		q = q.Order("scheduled_at DESC")
	}
	err := q.Find(&appts).Error
	return appts, err
}

// UpdateAppointment changes the fields present in the request
func (s *AppointmentService) UpdateAppointment(ctx context.Context, userID, apptID uuid.UUID, req *types.UpdateAppointmentRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", apptID, userID).
		First(&appt).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		appt.Title = *req.Title
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	if req.ScheduledAt != nil {
		appt.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		switch *req.Status {
		case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCancelled:
			appt.Status = *req.Status
		default:
			return nil, ErrInvalidAppointmentStatus
		}
	}

	if err := s.db.WithContext(ctx).Save(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelAppointment marks an appointment cancelled without deleting it
func (s *AppointmentService) CancelAppointment(ctx context.Context, userID, apptID uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", apptID, userID).
		First(&appt).Error; err != nil {
		return nil, err
	}

	appt.Status = models.AppointmentCancelled
	if err := s.db.WithContext(ctx).Save(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteAppointment removes an appointment entirely
func (s *AppointmentService) DeleteAppointment(ctx context.Context, userID, apptID uuid.UUID) error {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", apptID, userID).
		First(&appt).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&appt).Error
}
