package service

import (
	"context"
	"log"
	"strings"

	"github.com/ketoplate/backend/internal/models"
	"gorm.io/gorm"
)

// CatalogService loads the reference list of foods permitted under the
// diet plan. The list is read fresh per request; nothing is cached.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// catalogSource is one loading strategy. Returning (nil, nil) means the
// source had nothing to offer and the next one is tried.
type catalogSource struct {
	name string
	load func(ctx context.Context) ([]models.AllowedFood, error)
}

// LoadAllowedFoods tries each source in order and returns the first
// non-empty result. Failures are logged and skipped; when every source
// fails or is empty the caller gets an empty (non-nil) catalog, which the
// filter treats as "no catalog-based allowances" rather than an error.
func (s *CatalogService) LoadAllowedFoods(ctx context.Context) []models.AllowedFood {
	sources := []catalogSource{
		{name: "allowed_foods", load: s.loadReferenceTable},
		{name: "meal_items", load: s.deriveFromMealLog},
	}

	for _, src := range sources {
		foods, err := src.load(ctx)
		if err != nil {
			log.Printf("catalog: %s source failed: %v", src.name, err)
			continue
		}
		if len(foods) > 0 {
			return foods
		}
	}
	return []models.AllowedFood{}
}

// loadReferenceTable reads the curated allowed_foods table.
func (s *CatalogService) loadReferenceTable(ctx context.Context) ([]models.AllowedFood, error) {
	var foods []models.AllowedFood
	if err := s.db.WithContext(ctx).Find(&foods).Error; err != nil {
		return nil, err
	}
	for i := range foods {
		foods[i].Name = strings.ToLower(foods[i].Name)
	}
	return foods, nil
}

// deriveFromMealLog approximates the catalog from foods users have
// already logged, excluding beverages, which are never treated as plan
// ingredients.
func (s *CatalogService) deriveFromMealLog(ctx context.Context) ([]models.AllowedFood, error) {
	var rows []struct {
		FoodName string
		Category string
	}
	err := s.db.WithContext(ctx).
		Model(&models.MealItem{}).
		Distinct("food_name", "category").
		Where("category <> ?", models.CategoryBeverage).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	foods := make([]models.AllowedFood, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, models.AllowedFood{
			Name:     strings.ToLower(row.FoodName),
			Category: row.Category,
		})
	}
	return foods, nil
}
