package types

import "time"

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates profile fields; nil pointers leave the
// stored value untouched.
type UpdateProfileRequest struct {
	Username    *string  `json:"username"`
	HeightCM    *float64 `json:"height_cm"`
	WeightKG    *float64 `json:"weight_kg"`
	FitnessGoal *string  `json:"fitness_goal"`
}

// UpdatePreferencesRequest replaces a user's dietary targets.
type UpdatePreferencesRequest struct {
	TargetCalories           int     `json:"target_calories" binding:"required,gt=0"`
	PreferredProteinCategory string  `json:"preferred_protein_category" binding:"required"`
	DailyProteinTarget       float64 `json:"daily_protein_target" binding:"gte=0"`
	DailyVegetableServings   float64 `json:"daily_vegetable_servings" binding:"gte=0"`
	DailyFruitServings       float64 `json:"daily_fruit_servings" binding:"gte=0"`
}

// MealItemRequest is one food entry of a logged meal
type MealItemRequest struct {
	FoodName string  `json:"food_name" binding:"required"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

// LogMealRequest creates or replaces a meal with its items
type LogMealRequest struct {
	Type  string            `json:"type" binding:"required"`
	AteAt time.Time         `json:"ate_at" binding:"required"`
	Items []MealItemRequest `json:"items" binding:"required,dive"`
}

// LogActivityRequest upserts water/exercise amounts for a day
type LogActivityRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	WaterGlasses    *float64  `json:"water_glasses"`
	ExerciseMinutes *float64  `json:"exercise_minutes"`
}

// CreateAppointmentRequest books a clinic appointment
type CreateAppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Notes       string    `json:"notes"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// UpdateAppointmentRequest reschedules or annotates an appointment
type UpdateAppointmentRequest struct {
	Title       *string    `json:"title"`
	Notes       *string    `json:"notes"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status"`
}
