package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceService resolves and stores per-user dietary targets.
type PreferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// ResolvePreferences fetches the stored preference record for a user. A
// missing record or a storage failure degrades to the default targets,
// which are written back best-effort; the write-back is an idempotent
// upsert keyed by user id, so losing it is harmless. This method never
// fails from the caller's point of view.
func (s *PreferenceService) ResolvePreferences(ctx context.Context, userID uuid.UUID) *models.DietPreference {
	var pref models.DietPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err == nil {
		return &pref
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("preferences: fetch failed for user %s, using defaults: %v", userID, err)
	}

	def := models.DefaultDietPreference(userID)
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(def).Error; err != nil {
		log.Printf("preferences: default write-back failed for user %s: %v", userID, err)
	}
	return def
}

// UpdatePreferences replaces a user's dietary targets, creating the record
// if none exists yet.
func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*models.DietPreference, error) {
	var pref models.DietPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		pref = models.DietPreference{UserID: userID}
	}

	pref.TargetCalories = req.TargetCalories
	pref.PreferredProteinCategory = req.PreferredProteinCategory
	pref.DailyProteinTarget = req.DailyProteinTarget
	pref.DailyVegetableServings = req.DailyVegetableServings
	pref.DailyFruitServings = req.DailyFruitServings

	if err := s.db.WithContext(ctx).Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
