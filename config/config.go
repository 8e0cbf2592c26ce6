package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"mealtrack/models"
)

// Config holds all configuration for the application.
type Config struct {
	Environment   string
	IsProduction  bool
	IsDevelopment bool

	Port   string
	DBPath string

	// Secret used to sign mock subscription entitlement tokens.
	EntitlementSecret string

	// How many entries the most-common-foods ranking keeps.
	TopFoodsLimit int
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "mealtrack.db"),
		EntitlementSecret: getEnv("ENTITLEMENT_SECRET", ""),
	}

	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	var err error
	cfg.TopFoodsLimit, err = strconv.Atoi(getEnv("TOP_FOODS_LIMIT", "5"))
	if err != nil || cfg.TopFoodsLimit <= 0 {
		cfg.TopFoodsLimit = 5
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	if c.EntitlementSecret == "" {
		return fmt.Errorf("ENTITLEMENT_SECRET environment variable is required")
	}
	return nil
}

// InitDB opens the local database file and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.MealRecord{},
		&models.StreakRecord{},
		&models.FoodItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
