package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Presence.ScanTimeout <= 0 {
		return fmt.Errorf("presence.scan_timeout must be > 0 (got %v)", c.Presence.ScanTimeout)
	}
	if c.Presence.StaleAfter <= 0 {
		return fmt.Errorf("presence.stale_after must be > 0 (got %v)", c.Presence.StaleAfter)
	}
	if c.Presence.ScanBaseURL != "" && !strings.HasPrefix(c.Presence.ScanBaseURL, "http") {
		return fmt.Errorf("presence.scan_base_url must be an http(s) URL (got %q)", c.Presence.ScanBaseURL)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
