package config

import (
	"fmt"
)

// DefaultJWTExpirationHours is the token lifetime when none is configured.
const DefaultJWTExpirationHours = 24

// JWTConfig is the token-signing slice of the configuration.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWT extracts the validated token settings. The secret is required; the
// serve path calls this so CLI-only runs never need one.
func (c *Config) JWT() (*JWTConfig, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("config error: jwt_secret is required (JWT_SECRET)")
	}

	hours := c.JWTExpirationHours
	if hours == 0 {
		hours = DefaultJWTExpirationHours
	}
	if hours < 1 {
		return nil, fmt.Errorf("config error: jwt_expiration_hours must be at least 1, got %d", hours)
	}

	return &JWTConfig{Secret: c.JWTSecret, ExpirationHours: hours}, nil
}
