package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("WEB_ADDR", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("LOCALE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.WebAddr != ":8080" {
		t.Errorf("WebAddr = %q", cfg.WebAddr)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q", cfg.MigrationsPath)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://db.example.com:5432/activities")
	t.Setenv("API_BASE_URL", "http://api.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "postgres://db.example.com:5432/activities" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.APIBaseURL != "http://api.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestLoadRejectsInvalidDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "just-a-hostname")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted a DATABASE_URL without scheme or host")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %v, want it to name DATABASE_URL", err)
	}
}

func TestLoadRejectsInvalidAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a base url")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted an API_BASE_URL without scheme or host")
	}
	if !strings.Contains(err.Error(), "API_BASE_URL") {
		t.Errorf("error = %v, want it to name API_BASE_URL", err)
	}
}
