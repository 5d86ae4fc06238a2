package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Matching  MatchingConfig  `mapstructure:"matching"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Weather   WeatherConfig   `mapstructure:"weather"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

// ProvidersConfig holds the routing provider credentials and ordering.
// An unset API key leaves that provider disabled and the service degrades
// to the next provider or synthetic routes.
type ProvidersConfig struct {
	Preferred string         `mapstructure:"preferred"`
	Google    ProviderConfig `mapstructure:"google"`
	OpenRoute ProviderConfig `mapstructure:"openroute"`
	Timeout   time.Duration  `mapstructure:"timeout"`
}

// ProviderConfig holds a single provider's credentials
type ProviderConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// MatchingConfig holds toll matching parameters
type MatchingConfig struct {
	ThresholdKm float64 `mapstructure:"threshold_km"`
}

// DatasetConfig holds plaza dataset settings. An empty path selects the
// embedded reference dataset.
type DatasetConfig struct {
	Path           string        `mapstructure:"path"`
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
}

// WeatherConfig holds the optional weather decoration settings
type WeatherConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// CacheConfig holds route cache settings
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Load reads configuration from an optional yaml file and TOLLS_-prefixed
// environment variables. Environment variables win over file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("providers.preferred", "")
	v.SetDefault("providers.timeout", 5*time.Second)
	// Credentials default to empty: the matching provider stays disabled
	// until a key is supplied through the environment or config file.
	v.SetDefault("providers.google.api_key", "")
	v.SetDefault("providers.openroute.api_key", "")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("matching.threshold_km", 5.0)
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.reload_interval", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.cleanup_interval", 5*time.Minute)

	v.SetEnvPrefix("TOLLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}
