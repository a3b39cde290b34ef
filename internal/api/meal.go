package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/service"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// MealHandler exposes meal logging and daily nutrition summaries.
type MealHandler struct {
	meals service.IMealService
}

// NewMealHandler creates a new MealHandler instance
func NewMealHandler(meals service.IMealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// RegisterRoutes registers the meal routes
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.LogMeal)
		meals.GET("", h.ListMeals)
		meals.GET("/summary", h.DailySummary)
		meals.GET("/:id", h.GetMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

// LogMeal records a meal with its food items
func (h *MealHandler) LogMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.LogMeal(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// ListMeals returns the user's meals, optionally bounded by ?from and ?to dates
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	from, ok := optionalDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := optionalDateQuery(c, "to")
	if !ok {
		return
	}

	meals, err := h.meals.ListMeals(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// DailySummary returns consumed totals and goal progress for one day
func (h *MealHandler) DailySummary(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := h.meals.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build daily summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMeal returns a single meal with its items
func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.meals.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// UpdateMeal replaces a logged meal and its items
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req types.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.UpdateMeal(c.Request.Context(), userID, mealID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// DeleteMeal removes a logged meal
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// optionalDateQuery parses a YYYY-MM-DD query parameter when present.
// Responds 400 and returns false on a malformed value.
func optionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be formatted as YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}
