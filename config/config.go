package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var storeIDRegex = regexp.MustCompile(`^\d+$`)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Retailer RetailerConfig `mapstructure:"retailer"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Lookup   LookupConfig   `mapstructure:"lookup"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RetailerConfig holds retailer site configuration
type RetailerConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	ImageBaseURL      string        `mapstructure:"image_base_url"`
	DefaultStoreID    string        `mapstructure:"default_store_id"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	UserAgent         string        `mapstructure:"user_agent"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// LookupConfig holds resolution options
type LookupConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration like Load but reads the given config file
// instead of searching the default paths. An explicit file must exist.
func LoadFile(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/partscout/")
	}

	// Environment variable settings
	v.SetEnvPrefix("PARTSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
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

// loadEnvFile loads ./.env if present. Variables already set in the
// environment are not overridden.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Retailer defaults
	v.SetDefault("retailer.base_url", "https://www.microcenter.com")
	v.SetDefault("retailer.image_base_url", "https://productimages.microcenter.com")
	v.SetDefault("retailer.default_store_id", "131")
	v.SetDefault("retailer.timeout", "30s")
	v.SetDefault("retailer.requests_per_second", 1)
	v.SetDefault("retailer.burst", 3)
	v.SetDefault("retailer.user_agent", "")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "15m")

	v.SetDefault("lookup.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Retailer.BaseURL == "" {
		return fmt.Errorf("retailer base URL is required (set PARTSCOUT_RETAILER_BASE_URL)")
	}

	u, err := url.Parse(config.Retailer.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("retailer base URL must be absolute, got: %s", config.Retailer.BaseURL)
	}

	if config.Retailer.DefaultStoreID != "" && !storeIDRegex.MatchString(config.Retailer.DefaultStoreID) {
		return fmt.Errorf("default store id must be numeric, got: %s", config.Retailer.DefaultStoreID)
	}

	if config.Retailer.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got: %v", config.Retailer.RequestsPerSecond)
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	return nil
}
