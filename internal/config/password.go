package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds. Below 10 is too weak for stored credentials; above 14
// a single login stalls the request for seconds.
const (
	DefaultBcryptCost = 12
	MinBcryptCost     = 10
	MaxBcryptCost     = 14
)

// PasswordConfig is the credential-hashing slice of the configuration.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional site-wide secret mixed into every hash
}

// Password extracts the validated hashing settings.
func (c *Config) Password() (*PasswordConfig, error) {
	cost := c.BcryptCost
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < MinBcryptCost || cost > MaxBcryptCost {
		return nil, fmt.Errorf("config error: bcrypt_cost out of range: %d (must be %d-%d)", cost, MinBcryptCost, MaxBcryptCost)
	}

	return &PasswordConfig{BcryptCost: cost, Pepper: c.PasswordPepper}, nil
}

// HashPassword hashes a password with bcrypt at the configured cost.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw))) == nil
}

func (c *PasswordConfig) peppered(pw string) string {
	return pw + c.Pepper
}
