package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ketoplate/backend/internal/api"
	"github.com/ketoplate/backend/internal/middleware"
)

// Handlers groups everything SetupRouter mounts.
type Handlers struct {
	Auth           *api.AuthHandler
	Profile        *api.ProfileHandler
	Meal           *api.MealHandler
	Activity       *api.ActivityHandler
	Appointment    *api.AppointmentHandler
	Recommendation *api.RecommendationHandler
}

// SetupRouter configures the application routes. rateLimiter may be nil
// when Redis is not configured; recommendations are then unthrottled.
func SetupRouter(
	handlers Handlers,
	validator middleware.TokenValidator,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public auth routes
	handlers.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		handlers.Profile.RegisterRoutes(protected)
		handlers.Meal.RegisterRoutes(protected)
		handlers.Activity.RegisterRoutes(protected)
		handlers.Appointment.RegisterRoutes(protected)

		// Recommendations hit a paid external API, so they get their
		// own throttle on top of auth.
		recommendations := protected.Group("")
		if rateLimiter != nil {
			recommendations.Use(rateLimiter.RateLimitMiddleware())
		}
		handlers.Recommendation.RegisterRoutes(recommendations)
	}

	return router
}
