package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default dietary targets used when a user has no stored preferences.
const (
	DefaultTargetCalories         = 2000
	DefaultProteinCategory        = "Lean"
	DefaultDailyProteinTarget     = 100
	DefaultDailyVegetableServings = 2
	DefaultDailyFruitServings     = 1
)

// DietPreference is a user's per-day nutritional targets. It drives the
// search constraints of the recommendation pipeline and the daily summary
// percentages.
type DietPreference struct {
	ID                       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TargetCalories           int            `gorm:"not null" json:"target_calories"`
	PreferredProteinCategory string         `gorm:"size:50;not null" json:"preferred_protein_category"`
	DailyProteinTarget       float64        `gorm:"not null" json:"daily_protein_target"`
	DailyVegetableServings   float64        `gorm:"not null" json:"daily_vegetable_servings"`
	DailyFruitServings       float64        `gorm:"not null" json:"daily_fruit_servings"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DietPreference) TableName() string {
	return "diet_preferences"
}

func (p *DietPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DefaultDietPreference synthesizes the fallback preference record for a
// user with no stored preferences.
func DefaultDietPreference(userID uuid.UUID) *DietPreference {
	return &DietPreference{
		UserID:                   userID,
		TargetCalories:           DefaultTargetCalories,
		PreferredProteinCategory: DefaultProteinCategory,
		DailyProteinTarget:       DefaultDailyProteinTarget,
		DailyVegetableServings:   DefaultDailyVegetableServings,
		DailyFruitServings:       DefaultDailyFruitServings,
	}
}
