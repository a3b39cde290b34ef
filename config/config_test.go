package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "ketoplate", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "https://api.spoonacular.com/recipes/complexSearch", cfg.SpoonacularAPIURL)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "ketoplate_ci")
	t.Setenv("SPOONACULAR_API_KEY", "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "ketoplate_ci", cfg.DBName)
	assert.Equal(t, "env-key", cfg.SpoonacularAPIKey)
}

func TestLoadConfigReadsSecretFiles(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("JWT_SECRET", "")

	secretFile := filepath.Join(t.TempDir(), "jwt_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("file-secret\n"), 0600))
	t.Setenv("JWT_SECRET_FILE", secretFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")

	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "ketoplate",
	}
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")

	cfg.JWTSecret = "secret"
	cfg.SpoonacularAPIKey = "key"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigMissingRequiredFields(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")

	err := ValidateConfig(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
