package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ketoplate/backend/internal/service"
)

// RecommendationHandler exposes personalized recipe recommendations.
type RecommendationHandler struct {
	recommendations service.IRecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(recommendations service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.GetRecommendations)
}

// GetRecommendations returns keto-compatible recipes tailored to the
// user's dietary preferences.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	recipes, prefs, err := h.recommendations.GetPersonalizedRecommendations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe search failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":     recipes,
		"preferences": prefs,
	})
}
