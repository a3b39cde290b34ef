package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food categories used for catalog matching and the meal-log fallback.
const (
	CategoryProtein   = "protein"
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryBeverage  = "beverage"
	CategoryOther     = "other"
)

// AllowedFood is a read-only reference entry: an ingredient permitted
// under the active diet plan. Names are stored lower-cased so the filter
// can do substring matching without re-normalizing.
type AllowedFood struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AllowedFood) TableName() string {
	return "allowed_foods"
}

func (f *AllowedFood) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
