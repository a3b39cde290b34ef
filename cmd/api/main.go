package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ketoplate/backend/config"
	"github.com/ketoplate/backend/internal/api"
	"github.com/ketoplate/backend/internal/database"
	"github.com/ketoplate/backend/internal/middleware"
	"github.com/ketoplate/backend/internal/router"
	"github.com/ketoplate/backend/internal/server"
	"github.com/ketoplate/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs recommendation rate limiting; the app runs without it.
	var rateLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, recommendation rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewRecommendationRateLimiter(redisClient)
	}

	// S3 backs avatar uploads; profile editing still works without it.
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, avatar uploads disabled: %v", err)
		s3Config = nil
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, s3Config)
	preferenceService := service.NewPreferenceService(db)
	catalogService := service.NewCatalogService(db)
	mealService := service.NewMealService(db, preferenceService)
	activityService := service.NewActivityService(db)
	appointmentService := service.NewAppointmentService(db)
	spoonacularClient := service.NewSpoonacularClient(cfg)
	recommendationService := service.NewRecommendationService(preferenceService, catalogService, spoonacularClient)

	// Handlers and routes
	handlers := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Profile:        api.NewProfileHandler(profileService, preferenceService),
		Meal:           api.NewMealHandler(mealService),
		Activity:       api.NewActivityHandler(activityService),
		Appointment:    api.NewAppointmentHandler(appointmentService),
		Recommendation: api.NewRecommendationHandler(recommendationService),
	}
	engine := router.SetupRouter(handlers, authService, rateLimiter)

	srv := server.New(engine, cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
