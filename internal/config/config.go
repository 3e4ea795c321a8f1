package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// ListenAddr is the activities API listen address.
	ListenAddr string
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string
	// MigrationsPath is the directory holding the SQL migrations.
	MigrationsPath string
	// WebAddr is the signup page listen address.
	WebAddr string
	// APIBaseURL is where the signup page reaches the activities API.
	APIBaseURL string
	// DefaultLocale selects the message catalog.
	DefaultLocale string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment
		// (Docker, CI, etc.).
	}

	cfg := &Config{
		ListenAddr:     getenv("LISTEN_ADDR", ":8000"),
		DatabaseURL:    getenv("DATABASE_URL", "postgres://localhost:5432/activityboard?sslmode=disable"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "migrations"),
		WebAddr:        getenv("WEB_ADDR", ":8080"),
		APIBaseURL:     getenv("API_BASE_URL", "http://localhost:8000"),
		DefaultLocale:  getenv("LOCALE", "en"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if err := validateURL("DATABASE_URL", c.DatabaseURL); err != nil {
		return err
	}
	if err := validateURL("API_BASE_URL", c.APIBaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.MigrationsPath) == "" {
		return fmt.Errorf("config: MIGRATIONS_PATH cannot be empty")
	}
	return nil
}

func validateURL(name, value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("config: invalid %s (%q): %w", name, value, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid %s (%q): missing scheme or host", name, value)
	}
	return nil
}
