// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// Planner modes selectable with PLANNER_MODE.
const (
	PlannerModePipeline = "pipeline"
	PlannerModeModel    = "model"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     logger.Config
	App         AppConfig
	OpenAI      OpenAIConfig
	Amadeus     AmadeusConfig
	OpenWeather OpenWeatherConfig
	Extraction  ExtractionConfig
	Providers   ProvidersConfig
}

// ServerConfig holds HTTP server settings.
// WriteTimeout must cover the extraction retry budget plus the provider calls.
type ServerConfig struct {
	Port           int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"55s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	PlannerMode string `env:"PLANNER_MODE" envDefault:"pipeline"`
}

// OpenAIConfig holds the language model settings.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL"`
}

// AmadeusConfig holds the flight and reference data provider settings.
type AmadeusConfig struct {
	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
}

// OpenWeatherConfig holds the weather provider settings.
type OpenWeatherConfig struct {
	APIKey  string `env:"OPENWEATHER_API_KEY"`
	BaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
}

// ExtractionConfig holds the retry policy of the trip extraction stage.
type ExtractionConfig struct {
	MaxAttempts int           `env:"EXTRACTION_MAX_ATTEMPTS" envDefault:"3"`
	RetryDelay  time.Duration `env:"EXTRACTION_RETRY_DELAY" envDefault:"5s"`
}

// ProvidersConfig holds settings shared by all outbound provider clients.
type ProvidersConfig struct {
	HTTPTimeout time.Duration `env:"PROVIDER_HTTP_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_REQUEST_TIMEOUT", cfg.Server.RequestTimeout},
		{"PROVIDER_HTTP_TIMEOUT", cfg.Providers.HTTPTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}
	if cfg.Server.RequestTimeout > cfg.Server.WriteTimeout {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT (%s) should not exceed SERVER_WRITE_TIMEOUT (%s)",
			cfg.Server.RequestTimeout, cfg.Server.WriteTimeout)
	}

	if cfg.Extraction.MaxAttempts < 1 || cfg.Extraction.MaxAttempts > 10 {
		return fmt.Errorf("EXTRACTION_MAX_ATTEMPTS must be between 1 and 10, got %d", cfg.Extraction.MaxAttempts)
	}
	if cfg.Extraction.RetryDelay < 0 {
		return fmt.Errorf("EXTRACTION_RETRY_DELAY must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	switch cfg.App.PlannerMode {
	case PlannerModePipeline, PlannerModeModel:
	default:
		return fmt.Errorf("PLANNER_MODE must be one of: pipeline, model; got %q", cfg.App.PlannerMode)
	}

	return validateCredentials(cfg)
}

// validateCredentials requires the keys of every provider the selected planner mode calls.
func validateCredentials(cfg *Config) error {
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.App.PlannerMode == PlannerModeModel {
		return nil
	}
	if cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "" {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required in %s mode", PlannerModePipeline)
	}
	if cfg.OpenWeather.APIKey == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY is required in %s mode", PlannerModePipeline)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
