package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged meal (breakfast, lunch, dinner, snack) with its items.
type Meal struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string         `gorm:"size:20;not null" json:"type"`
	AteAt     time.Time      `gorm:"not null;index" json:"ate_at"`
	Items     []MealItem     `gorm:"foreignKey:MealID" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Meal) TableName() string {
	return "meals"
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealItem stores the per-food nutrition snapshot taken at logging time.
// The catalog loader also reads this table as its fallback source of
// allowed foods, so FoodName and Category must stay queryable.
type MealItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealID    uuid.UUID `gorm:"type:uuid;not null;index" json:"meal_id"`
	FoodName  string    `gorm:"size:255;not null" json:"food_name"`
	Category  string    `gorm:"size:50" json:"category"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `gorm:"size:50" json:"unit"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MealItem) TableName() string {
	return "meal_items"
}

func (i *MealItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
