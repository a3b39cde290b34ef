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

// ActivityService tracks per-day water intake and exercise minutes.
type ActivityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityService instance
func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// LogActivity upserts the activity row for the request's day. Only the
// fields present in the request are changed.
func (s *ActivityService) LogActivity(ctx context.Context, userID uuid.UUID, req *types.LogActivityRequest) (*models.ActivityLog, error) {
	date := dayStart(req.Date)

	var entry models.ActivityLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		entry = models.ActivityLog{UserID: userID, Date: date}
	}

	if req.WaterGlasses != nil {
		entry.WaterGlasses = *req.WaterGlasses
	}
	if req.ExerciseMinutes != nil {
		entry.ExerciseMinutes = *req.ExerciseMinutes
	}

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetActivity returns the activity row for a day; a zero-valued row if
// nothing was logged.
func (s *ActivityService) GetActivity(ctx context.Context, userID uuid.UUID, date time.Time) (*models.ActivityLog, error) {
	day := dayStart(date)

	var entry models.ActivityLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		entry = models.ActivityLog{UserID: userID, Date: day}
	}
	return &entry, nil
}

// ListActivity returns activity rows in [from, to), newest first.
func (s *ActivityService) ListActivity(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart(from), dayStart(to)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}
