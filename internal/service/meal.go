package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// MealService handles meal logging and the daily nutrition summary.
type MealService struct {
	db          *gorm.DB
	preferences *PreferenceService
}

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB, preferences *PreferenceService) *MealService {
	return &MealService{
		db:          db,
		preferences: preferences,
	}
}

// LogMeal creates a meal with its items and returns it fully populated.
// The meal and its items commit together or not at all.
func (s *MealService) LogMeal(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error) {
	meal := &models.Meal{
		UserID: userID,
		Type:   req.Type,
		AteAt:  req.AteAt,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			mi := &models.MealItem{
				MealID:   meal.ID,
				FoodName: item.FoodName,
				Category: item.Category,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Calories: item.Calories,
				Protein:  item.Protein,
				Carbs:    item.Carbs,
				Fat:      item.Fat,
			}
			if err := tx.Create(mi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.Meal
	if err := s.db.WithContext(ctx).Preload("Items").First(&populated, "id = ?", meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// GetMeal retrieves one meal owned by the user
func (s *MealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListMeals lists a user's meals. Each bound of [from, to) is applied
// independently when present.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	q := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC")
	if from != nil {
		q = q.Where("ate_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("ate_at < ?", *to)
	}
	err := q.Find(&meals).Error
	return meals, err
}

// UpdateMeal replaces a meal's metadata and items. The replacement is
// transactional: a failure leaves the previous items in place.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.LogMealRequest) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meal.Type = req.Type
		meal.AteAt = req.AteAt
		if err := tx.Save(&meal).Error; err != nil {
			return err
		}

		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			mi := &models.MealItem{
				MealID:   meal.ID,
				FoodName: item.FoodName,
				Category: item.Category,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Calories: item.Calories,
				Protein:  item.Protein,
				Carbs:    item.Carbs,
				Fat:      item.Fat,
			}
			if err := tx.Create(mi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated models.Meal
	if err := s.db.WithContext(ctx).Preload("Items").First(&updated, "id = ?", meal.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMeal removes a meal and its items
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&meal).Error
}

// ProgressEntry is one consumed-vs-goal pair of the daily summary.
// Percent is capped at 1.
type ProgressEntry struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DailySummary aggregates one day's intake against the user's targets.
type DailySummary struct {
	Date     time.Time     `json:"date"`
	Calories ProgressEntry `json:"calories"`
	Protein  ProgressEntry `json:"protein"`
	Carbs    ProgressEntry `json:"carbs"`
	Fat      ProgressEntry `json:"fat"`
	Water    ProgressEntry `json:"water"`
	Exercise ProgressEntry `json:"exercise"`
}

// DailySummary sums the items of every meal eaten on the given day and
// pairs them with the user's targets plus that day's activity log.
func (s *MealService) DailySummary(ctx context.Context, userID uuid.UUID, date time.Time) (*DailySummary, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	meals, err := s.ListMeals(ctx, userID, &start, &end)
	if err != nil {
		return nil, err
	}

	var cals, prot, carbs, fat float64
	for _, m := range meals {
		for _, it := range m.Items {
			cals += it.Calories
			prot += it.Protein
			carbs += it.Carbs
			fat += it.Fat
		}
	}

	var activity models.ActivityLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		First(&activity).Error; err != nil {
		activity = models.ActivityLog{}
	}

	prefs := s.preferences.ResolvePreferences(ctx, userID)

	return &DailySummary{
		Date:     start,
		Calories: progress(cals, float64(prefs.TargetCalories)),
		Protein:  progress(prot, prefs.DailyProteinTarget),
		Carbs:    progress(carbs, 0),
		Fat:      progress(fat, 0),
		Water:    progress(activity.WaterGlasses, 8),
		Exercise: progress(activity.ExerciseMinutes, 30),
	}, nil
}

func progress(consumed, goal float64) ProgressEntry {
	entry := ProgressEntry{Consumed: consumed, Goal: goal}
	if goal > 0 {
		entry.Percent = consumed / goal
		if entry.Percent > 1 {
			entry.Percent = 1
		}
	}
	return entry
}

// dayStart truncates a timestamp to midnight in its own location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
