package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings contains all runtime configuration for the content studio.
// Every field maps to one environment variable; defaults match the
// .env.example template shipped with the repository.
type Settings struct {
	// OpenAI configuration
	OpenAIAPIKey string `mapstructure:"openai_api_key" validate:"required"`
	OpenAIModel  string `mapstructure:"openai_model" validate:"required"`

	// Database configuration (Postgres connection string)
	DatabaseURL string `mapstructure:"database_url" validate:"required"`

	// Redis configuration (result cache)
	RedisURL string `mapstructure:"redis_url"`

	// Security configuration
	SecretKey                string `mapstructure:"secret_key" validate:"required"`
	Algorithm                string `mapstructure:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes" validate:"min=1,max=1440"`

	// Application configuration
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level" validate:"required"`
	MaxWorkers int    `mapstructure:"max_workers" validate:"min=1,max=64"`

	// Content studio configuration
	DefaultContentType   string `mapstructure:"default_content_type" validate:"required"`
	MaxContentLength     int    `mapstructure:"max_content_length" validate:"min=100,max=100000"`
	ContentReviewEnabled bool   `mapstructure:"content_review_enabled"`
}

// envBindings maps viper keys to environment variable names.
var envBindings = map[string]string{
	"openai_api_key":              "OPENAI_API_KEY",
	"openai_model":                "OPENAI_MODEL",
	"database_url":                "DATABASE_URL",
	"redis_url":                   "REDIS_URL",
	"secret_key":                  "SECRET_KEY",
	"algorithm":                   "ALGORITHM",
	"access_token_expire_minutes": "ACCESS_TOKEN_EXPIRE_MINUTES",
	"debug":                       "DEBUG",
	"log_level":                   "LOG_LEVEL",
	"max_workers":                 "MAX_WORKERS",
	"default_content_type":        "DEFAULT_CONTENT_TYPE",
	"max_content_length":          "MAX_CONTENT_LENGTH",
	"content_review_enabled":      "CONTENT_REVIEW_ENABLED",
}

// requiredVars must be present in the environment for the studio to start.
var requiredVars = []string{"OPENAI_API_KEY", "DATABASE_URL", "SECRET_KEY"}

// DefaultSettings returns settings with all defaults applied and
// required fields left empty.
func DefaultSettings() *Settings {
	return &Settings{
		OpenAIModel:              "gpt-4",
		RedisURL:                 "redis://localhost:6379",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		Debug:                    true,
		LogLevel:                 "INFO",
		MaxWorkers:               4,
		DefaultContentType:       "article",
		MaxContentLength:         5000,
		ContentReviewEnabled:     true,
	}
}

// Load reads settings from the environment. If envFile is non-empty and
// exists it is loaded first (values already set in the environment win,
// matching godotenv semantics).
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	defaults := DefaultSettings()
	v.SetDefault("openai_model", defaults.OpenAIModel)
	v.SetDefault("redis_url", defaults.RedisURL)
	v.SetDefault("algorithm", defaults.Algorithm)
	v.SetDefault("access_token_expire_minutes", defaults.AccessTokenExpireMinutes)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_workers", defaults.MaxWorkers)
	v.SetDefault("default_content_type", defaults.DefaultContentType)
	v.SetDefault("max_content_length", defaults.MaxContentLength)
	v.SetDefault("content_review_enabled", defaults.ContentReviewEnabled)

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks field constraints. Missing required variables are
// reported together so an operator can fix the environment in one pass.
func (s *Settings) Validate() error {
	var missing []string
	if s.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if s.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if s.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// MissingRequired returns the required environment variables that are
// not set, without loading a full Settings. Used by `studio config check`.
func MissingRequired() []string {
	var missing []string
	for _, env := range requiredVars {
		if os.Getenv(env) == "" {
			missing = append(missing, env)
		}
	}
	return missing
}

// ZerologLevel maps the configured LOG_LEVEL onto a zerolog level.
// Unknown values fall back to info.
func (s *Settings) ZerologLevel() zerolog.Level {
	switch strings.ToUpper(s.LogLevel) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds the process logger from the settings. DEBUG mode
// gets a human-readable console writer, production gets JSON.
func (s *Settings) NewLogger() zerolog.Logger {
	level := s.ZerologLevel()
	if s.Debug {
		return zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
