package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ModeTest       = "test"
	ModeProduction = "production"

	AppName    = "Spiritual Course Management"
	AppVersion = "1.0.0"

	// JWTExpirationHours is the fixed token lifetime. Expired tokens are
	// rejected, never refreshed.
	JWTExpirationHours = 24
)

// Config holds application configuration. It is built once at startup and
// passed down to everything that needs it; nothing mutates it afterwards.
type Config struct {
	Mode string
	Port string

	DatabaseURL      string // PostgreSQL DSN, required in production mode
	TestDatabaseFile string // sqlite file used in test mode

	JWTSecret    string
	JWTAlgorithm string

	CORSOrigins string

	AdminUsername string
	AdminPassword string
}

// Load initializes configuration from environment variables or defaults.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Mode:             getEnv("APP_MODE", ModeTest),
		Port:             getEnv("PORT", "3000"),
		DatabaseURL:      os.Getenv("POSTGRES_URL"),
		TestDatabaseFile: getEnv("TEST_DATABASE_FILE", "scms_test.db"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", "HS256"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.Mode != ModeTest && cfg.Mode != ModeProduction {
		return nil, fmt.Errorf("invalid APP_MODE %q: must be %q or %q", cfg.Mode, ModeTest, ModeProduction)
	}

	if cfg.IsProduction() && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL environment variable is required in production mode")
	}

	if !isHMACAlgorithm(cfg.JWTAlgorithm) {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q: must be HS256, HS384 or HS512", cfg.JWTAlgorithm)
	}

	if cfg.CORSOrigins == "" && !cfg.IsProduction() {
		cfg.CORSOrigins = "*"
	}

	if cfg.JWTSecret == "dev-secret-key-change-in-production" {
		log.Println("Warning: Using default JWT_SECRET. Update it in your environment.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs against the production store.
func (c *Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

func isHMACAlgorithm(alg string) bool {
	switch strings.ToUpper(alg) {
	case "HS256", "HS384", "HS512":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
