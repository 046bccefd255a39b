package config

import (
	"fmt"
	"os"
	"strconv"
)

// SessionConfig holds configuration for the signed session cookie.
type SessionConfig struct {
	// Secret is the key material for signing. Empty means a random key is
	// generated per process, so sessions do not survive a restart.
	Secret       string
	TTLHours     int
	CookieSecure bool
}

// NewSessionConfig creates a session configuration from environment variables.
// It reads SESSION_SECRET (optional), SESSION_TTL_HOURS (default: 24) and
// SESSION_COOKIE_SECURE (default: false).
func NewSessionConfig() (*SessionConfig, error) {
	ttlStr := os.Getenv("SESSION_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24"
	}
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", err)
	}

	secure := false
	if s := os.Getenv("SESSION_COOKIE_SECURE"); s != "" {
		secure, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %v", err)
		}
	}

	cfg := &SessionConfig{
		Secret:       os.Getenv("SESSION_SECRET"),
		TTLHours:     ttl,
		CookieSecure: secure,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SessionConfig) normalize() error {
	if c.TTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %d", c.TTLHours)
	}
	if c.Secret != "" && len(c.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	return nil
}
