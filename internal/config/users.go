package config

// Credentials holds a username/password pair for the application under test
type Credentials struct {
	Username string
	Password string
}

// UserConfig holds the well-known test accounts of the demo site
type UserConfig struct {
	Standard          Credentials
	LockedOut         Credentials
	Problem           Credentials
	PerformanceGlitch Credentials
}

// LoadUserConfig loads test account credentials from environment variables.
// The demo site ships fixed accounts, so every value has a default; the
// shared password can be overridden once via STANDARD_PASSWORD.
func LoadUserConfig(getenv func(string) string) UserConfig {
	password := getenv("STANDARD_PASSWORD")
	if password == "" {
		password = "secret_sauce"
	}

	return UserConfig{
		Standard:          Credentials{Username: envOrDefault(getenv, "STANDARD_USER", "standard_user"), Password: password},
		LockedOut:         Credentials{Username: envOrDefault(getenv, "LOCKED_OUT_USER", "locked_out_user"), Password: password},
		Problem:           Credentials{Username: envOrDefault(getenv, "PROBLEM_USER", "problem_user"), Password: password},
		PerformanceGlitch: Credentials{Username: envOrDefault(getenv, "PERFORMANCE_GLITCH_USER", "performance_glitch_user"), Password: password},
	}
}

func envOrDefault(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}
