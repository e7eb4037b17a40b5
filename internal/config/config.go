// Package config provides configuration loading and validation for the job board.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied after the environment and config file are merged.
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20
)

// Config represents the service configuration.
// Values come from the environment and may be overridden by a JSON file.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Gemini model for job drafting
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	LogLevel    string `json:"log_level,omitempty"`    // debug, info, warn or error

	// Limits
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Sustained requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Bucket size per client
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables.
// Malformed numbers are reported rather than silently ignored.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("GEMINI_MODEL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	var err error
	if cfg.Port, err = envInt("PORT"); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST"); err != nil {
		return nil, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %v", err)
		}
	}

	return cfg, nil
}

func envInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

// Load builds the effective configuration: the config file (if any) overrides the
// environment, then defaults fill whatever is still unset.
func Load(path string) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	cfg := *env
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = file.MergeWithDefaults(*env)
	}

	cfg = cfg.MergeWithDefaults(Config{
		Port:           DefaultPort,
		LogLevel:       DefaultLogLevel,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are checked by the commands that need them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	return result
}

// ParseLogLevel maps a LOG_LEVEL value onto a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
