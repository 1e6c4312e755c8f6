package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         int
	DevMode      bool
	DatabasePath string
	LogLevel     string

	// Core constants, one per signal type.
	CoreKHRV float64
	CoreKVO2 float64

	// Sentinel classifier thresholds on the bounded core score.
	RedThreshold    float64
	YellowThreshold float64

	// Display multiplier for the (1 - E) deviation view.
	DeviationScale float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/etcore.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CoreKHRV:        getEnvAsFloat("CORE_K_HRV", 80.0),
		CoreKVO2:        getEnvAsFloat("CORE_K_VO2", 60.0),
		RedThreshold:    getEnvAsFloat("SENTINEL_RED_THRESHOLD", 0.85),
		YellowThreshold: getEnvAsFloat("SENTINEL_YELLOW_THRESHOLD", 0.95),
		DeviationScale:  getEnvAsFloat("DEVIATION_SCALE", 300.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.CoreKHRV <= 0 || c.CoreKVO2 <= 0 {
		return fmt.Errorf("core constants must be positive, got hrv=%v vo2=%v", c.CoreKHRV, c.CoreKVO2)
	}
	if c.RedThreshold <= 0 || c.RedThreshold >= c.YellowThreshold || c.YellowThreshold > 1 {
		return fmt.Errorf("sentinel thresholds must satisfy 0 < red < yellow <= 1, got red=%v yellow=%v",
			c.RedThreshold, c.YellowThreshold)
	}
	if c.DeviationScale <= 0 {
		return fmt.Errorf("DEVIATION_SCALE must be positive, got %v", c.DeviationScale)
	}
	return nil
}

// KForSignal returns the core constant for a signal type. Unknown types
// fall back to the HRV constant.
func (c *Config) KForSignal(signal string) float64 {
	switch signal {
	case "vo2":
		return c.CoreKVO2
	default:
		return c.CoreKHRV
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
