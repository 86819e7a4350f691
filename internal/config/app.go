package config

import (
	"strconv"
	"strings"
	"time"
)

// AppConfig holds configuration for the application under test
type AppConfig struct {
	BaseURL           string
	Headless          bool
	SlowMo            time.Duration
	DefaultTimeout    time.Duration
	NavigationTimeout time.Duration
}

// LoadAppConfig loads application configuration from environment variables
func LoadAppConfig(getenv func(string) string) AppConfig {
	baseURL := getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.saucedemo.com" // Default to the public demo site
	}

	// Headless unless explicitly disabled for local debugging
	headless := getenv("HEADLESS") != "false"

	return AppConfig{
		BaseURL:           baseURL,
		Headless:          headless,
		SlowMo:            durationFromMillis(getenv("SLOW_MO_MS"), 0),
		DefaultTimeout:    durationFromMillis(getenv("DEFAULT_TIMEOUT_MS"), 30000),
		NavigationTimeout: durationFromMillis(getenv("NAVIGATION_TIMEOUT_MS"), 60000),
	}
}

// URL returns an absolute URL for a path on the application under test.
// The base URL is normalized so a trailing slash in BASE_URL does not
// produce double slashes.
func (c AppConfig) URL(path string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// durationFromMillis parses a millisecond count, falling back to a default
func durationFromMillis(value string, fallback int64) time.Duration {
	if value == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms < 0 {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
