package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/canvas-backend/internal/i18n"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Security.validate(); err != nil {
		return fmt.Errorf("security: %w", err)
	}

	if !i18n.IsSupported(c.I18n.FallbackLocale) {
		return fmt.Errorf("i18n.fallback_locale %q is not one of %v", c.I18n.FallbackLocale, i18n.Codes())
	}

	if c.Database.TxAttempts < 1 {
		return fmt.Errorf("database.tx_attempts must be >= 1 (got %d)", c.Database.TxAttempts)
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	return nil
}

func (s *SecurityConfig) validate() error {
	if s.PasswordHashCost < bcrypt.MinCost || s.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, s.PasswordHashCost)
	}
	return nil
}
