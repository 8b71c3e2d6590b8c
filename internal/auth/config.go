package auth

import (
	"fmt"
	"time"

	"eduman-backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer        string        `yaml:"issuer" json:"issuer"`
	TokenLifetime time.Duration `yaml:"token_lifetime" json:"token_lifetime"`
	BcryptCost    int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig derives the authentication settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		TokenLifetime: cfg.TokenLifetime(),
		BcryptCost:    cfg.BcryptCost,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}
