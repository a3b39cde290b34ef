package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog tracks the non-food daily inputs: water intake and exercise.
// One row per user per calendar day; Date is truncated to midnight.
type ActivityLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_user_date,unique" json:"user_id"`
	Date            time.Time `gorm:"not null;index:idx_activity_user_date,unique" json:"date"`
	WaterGlasses    float64   `json:"water_glasses"`
	ExerciseMinutes float64   `json:"exercise_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
