// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL string
		Timeout time.Duration
	}
	Retry struct {
		MaxRetries int
		BaseDelay  time.Duration
	}
	Member struct {
		DefaultID int64
	}
	Server struct {
		Port string
	}
}

// Load loads the configuration
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Create a new viper instance
	v := viper.New()

	// Set the config name (without extension)
	v.SetConfigName("config")

	// Add supported config file types
	v.SetConfigType("yaml")
	v.SetConfigType("json")

	// Add paths where to look for the config file
	v.AddConfigPath(".")                  // Look in current directory
	v.AddConfigPath("./config")           // Look in config subdirectory
	v.AddConfigPath("../config")          // Look in sibling config directory
	v.AddConfigPath("$HOME/.diet-client") // Look in home directory

	// Set default values
	v.SetDefault("API.BaseURL", "http://localhost:8080")
	v.SetDefault("API.Timeout", 10*time.Second)
	v.SetDefault("Retry.MaxRetries", 2)
	v.SetDefault("Retry.BaseDelay", time.Second)
	v.SetDefault("Member.DefaultID", 1)
	v.SetDefault("Server.Port", "")

	// Enable environment variables to override config values
	v.AutomaticEnv()

	// Try to read config file
	err := v.ReadInConfig()

	// If there is no config file, fall back to environment variables
	if err != nil {
		cfg := &Config{}

		cfg.API.BaseURL = getEnvOr("API_BASE_URL", "http://localhost:8080")
		cfg.API.Timeout = getEnvDurationOr("API_TIMEOUT", 10*time.Second)
		cfg.Retry.MaxRetries = getEnvIntOr("RETRY_MAX_RETRIES", 2)
		cfg.Retry.BaseDelay = getEnvDurationOr("RETRY_BASE_DELAY", time.Second)
		cfg.Member.DefaultID = int64(getEnvIntOr("MEMBER_DEFAULT_ID", 1))
		cfg.Server.Port = os.Getenv("SERVER_PORT")

		return cfg, nil
	}

	// Unmarshal config to struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Helper function to get environment variable with default value
func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOr(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDurationOr(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
