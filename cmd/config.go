package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing the default value of the global flags.
const (
	EnvTargetsFile   = "LAZY_TARGETS_FILE"
	EnvPortfolioFile = "LAZY_PORTFOLIO_FILE"
	EnvValueColumn   = "LAZY_VALUE_COLUMN"
	EnvLogLevel      = "LAZY_LOG_LEVEL"
	EnvLogPretty     = "LAZY_LOG_PRETTY"
)

// Config holds the application defaults.
type Config struct {
	TargetsFile   string
	PortfolioFile string
	ValueColumn   int
	LogLevel      string
	LogPretty     bool
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first if it exists; it never overrides a
// variable already set.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		TargetsFile:   getEnv(EnvTargetsFile, "targets.csv"),
		PortfolioFile: getEnv(EnvPortfolioFile, "portfolio.csv"),
		ValueColumn:   getEnvAsInt(EnvValueColumn, 1),
		LogLevel:      getEnv(EnvLogLevel, "info"),
		LogPretty:     getEnvAsBool(EnvLogPretty, true),
	}
}

// Validate checks that the configuration can be used to load a portfolio.
func (c *Config) Validate() error {
	if c.TargetsFile == "" {
		return fmt.Errorf("the targets file is required")
	}
	if c.PortfolioFile == "" {
		return fmt.Errorf("the portfolio file is required")
	}
	if c.ValueColumn < 1 {
		return fmt.Errorf("the value column must be at least 1, got %d", c.ValueColumn)
	}
	return nil
}

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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
