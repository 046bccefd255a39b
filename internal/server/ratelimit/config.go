package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Name   string        // Env suffix for overrides, e.g. GENERATE reads RATE_LIMIT_GENERATE_LIMIT
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 disables limiting
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads rate limiting configuration from RATE_LIMIT_* environment
// variables. Each endpoint's limit and burst can be overridden with
// RATE_LIMIT_<NAME>_LIMIT and RATE_LIMIT_<NAME>_BURST.
func LoadConfig() *Config {
	if !envOr("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	for i := range endpoints {
		ec := &endpoints[i]
		prefix := "RATE_LIMIT_" + ec.Name
		ec.Limit = envOr(prefix+"_LIMIT", ec.Limit, strconv.Atoi)
		ec.Burst = envOr(prefix+"_BURST", ec.Burst, strconv.Atoi)
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   envOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Rendering and PDF export are the expensive operations
		{Name: "GENERATE", Path: "/generate", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Name: "UPDATE_TEMPLATE", Path: "/update_template", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Name: "DOWNLOAD", Path: "/download/", Method: "GET", Limit: 20, Window: time.Minute, Burst: 5},

		// Form round trips happen on every add, remove and sample click
		{Name: "FORM", Path: "/form", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// envOr parses the named variable, falling back to def when it is unset or
// does not parse.
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// parseIPList parses a comma-separated list of client addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
