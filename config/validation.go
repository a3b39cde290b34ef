package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without is
// present. Development and test tolerate missing external credentials;
// production does not.
func ValidateConfig(cfg *Config) error {
	var errs []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "is required in production"}.Error())
		}
		if cfg.SpoonacularAPIKey == "" {
			errs = append(errs, ValidationError{Field: "SPOONACULAR_API_KEY", Message: "is required in production"}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
