package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string     // Endpoint path pattern (supports prefix matching)
	Method string     // HTTP method (GET, POST, etc.)
	Rate   rate.Limit // Sustained requests per second; zero means unlimited
	Burst  int        // Bucket size
}

// Per returns the rate that allows n events every window.
func Per(n int, window time.Duration) rate.Limit {
	return rate.Every(window / time.Duration(n))
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultRate     rate.Limit
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Buckets unused for longer are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig builds the limiter configuration for the given default budget.
// RATE_LIMIT_ENABLED, RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_WHITELIST and
// RATE_LIMIT_BLACKLIST are read from the environment.
func LoadConfig(defaultRPS float64, defaultBurst int) *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultRate:     rate.Limit(defaultRPS),
		DefaultBurst:    defaultBurst,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         time.Hour,
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model calls (strictest limits)
		{Path: "/drafts", Method: "POST", Rate: Per(30, time.Hour), Burst: 3},

		// Tier 2: credential endpoints
		{Path: "/admin-signup", Method: "POST", Rate: Per(5, time.Hour), Burst: 2},
		{Path: "/auth/login", Method: "POST", Rate: Per(10, time.Minute), Burst: 5},

		// Tier 3: write operations
		{Path: "/jobs/", Method: "POST", Rate: Per(100, time.Minute), Burst: 10},
		{Path: "/jobs/", Method: "PUT", Rate: Per(100, time.Minute), Burst: 10},
		{Path: "/jobs/", Method: "DELETE", Rate: Per(100, time.Minute), Burst: 10},

		// Reads use the default budget; health is unlimited (see MatchEndpoint).
	}
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
