package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-short-syntax/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Parser
	ShortSyntax ShortSyntaxConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// ShortSyntaxConfig configures the parser and its reference catalog.
type ShortSyntaxConfig struct {
	Timezone    string
	CatalogPath string        // YAML tags/projects snapshot; empty means no catalog
	CatalogTTL  time.Duration // how long a loaded snapshot is served before re-reading
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Short syntax
	cfg.ShortSyntax.Timezone = viper.GetString("short_syntax.timezone")
	cfg.ShortSyntax.CatalogPath = viper.GetString("short_syntax.catalog_path")
	cfg.ShortSyntax.CatalogTTL = viper.GetDuration("short_syntax.catalog_ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("short_syntax.timezone", "UTC")
	viper.SetDefault("short_syntax.catalog_path", "")
	viper.SetDefault("short_syntax.catalog_ttl", "1m")
}

func (cfg *Config) validate() error {
	if !model.Environment(cfg.Environment.Name).Valid() {
		return fmt.Errorf("environment.name %q is not development, staging or production", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test, got %q", cfg.HTTPServer.Mode)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	if _, err := time.LoadLocation(cfg.ShortSyntax.Timezone); err != nil {
		return fmt.Errorf("short_syntax.timezone: %w", err)
	}
	if cfg.ShortSyntax.CatalogTTL < 0 {
		return fmt.Errorf("short_syntax.catalog_ttl must not be negative")
	}
	return nil
}
