package config

import (
	"fmt"
	"os"
	"time"
)

// Admin token settings.
const (
	DefaultJWTIssuer          = "job-board"
	DefaultJWTExpirationHours = 24
	MaxJWTExpirationHours     = 24 * 30
	minJWTSecretLength        = 16
)

// JWTConfig holds the signing settings for admin session tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// NewJWTConfig reads JWT_SECRET (required), JWT_EXPIRATION_HOURS and JWT_ISSUER.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours, err := envInt("JWT_EXPIRATION_HOURS")
	if err != nil {
		return nil, err
	}
	if os.Getenv("JWT_EXPIRATION_HOURS") == "" {
		hours = DefaultJWTExpirationHours
	}

	cfg := &JWTConfig{
		Secret:          secret,
		ExpirationHours: hours,
		Issuer:          os.Getenv("JWT_ISSUER"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the secret and lifetime and defaults the issuer.
func (c *JWTConfig) Validate() error {
	if len(c.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters, got: %d", minJWTSecretLength, len(c.Secret))
	}
	if c.ExpirationHours < 1 || c.ExpirationHours > MaxJWTExpirationHours {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be between 1 and %d hours, got: %d", MaxJWTExpirationHours, c.ExpirationHours)
	}
	if c.Issuer == "" {
		c.Issuer = DefaultJWTIssuer
	}
	return nil
}

// TTL is the lifetime of an issued token.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
