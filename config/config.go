package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Dataset     DatasetConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Calories    CaloriesConfig
	Search      SearchConfig
	Ingredients IngredientsConfig
	Log         LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatasetConfig locates the dish dataset
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // only "memory" is supported
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// CaloriesConfig holds calorie display conventions
type CaloriesConfig struct {
	DefaultTarget float64 `mapstructure:"default_target"`
	GoalDelta     float64 `mapstructure:"goal_delta"`
}

// SearchConfig holds dish name search tuning
type SearchConfig struct {
	MinScore            float64 `mapstructure:"min_score"`
	EnableFuzzyMatching bool    `mapstructure:"enable_fuzzy_matching"`
	EnableDebugLogging  bool    `mapstructure:"enable_debug_logging"`
}

// IngredientsConfig holds the grocery search page linked from each ingredient
type IngredientsConfig struct {
	ShopURL string `mapstructure:"shop_url"` // empty disables links
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dishlens/")

	// Environment variable settings
	v.SetEnvPrefix("DISHLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads variables from ./.env if present. Variables that are
// already set in the environment are left untouched.
func loadEnvFile() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Dataset defaults
	v.SetDefault("dataset.path", "dishes.json")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Calorie display defaults
	v.SetDefault("calories.default_target", 2000)
	v.SetDefault("calories.goal_delta", 500)

	// Search defaults
	v.SetDefault("search.min_score", 30)
	v.SetDefault("search.enable_fuzzy_matching", true)
	v.SetDefault("search.enable_debug_logging", false)

	// Ingredient link defaults
	v.SetDefault("ingredients.shop_url", "https://www.amazon.com/s?i=amazonfresh")

	// Log defaults
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Dataset.Path == "" {
		return fmt.Errorf("dataset path is required (set DISHLENS_DATASET_PATH)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	if config.Calories.DefaultTarget <= 0 {
		return fmt.Errorf("default calorie target must be positive, got: %v", config.Calories.DefaultTarget)
	}

	if config.Calories.GoalDelta < 0 {
		return fmt.Errorf("calorie goal delta must not be negative, got: %v", config.Calories.GoalDelta)
	}

	if shopURL := config.Ingredients.ShopURL; shopURL != "" {
		u, err := url.Parse(shopURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("ingredients shop URL must be an absolute http(s) URL, got: %s", shopURL)
		}
	}

	return nil
}
