package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost/mediflow_test")
	setEnv(t, "ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5004" {
		t.Errorf("Port = %q, want 5004", cfg.Port)
	}
	if cfg.TokenTTLHours != 12 {
		t.Errorf("TokenTTLHours = %d, want 12", cfg.TokenTTLHours)
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev to be true")
	}
	if cfg.JWTSecret == "" {
		t.Error("expected dev default JWT secret to be filled in")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	setEnv(t, "DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestValidate_ProductionRequiresRealSecret(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: "dev-secret", TokenTTLHours: 12}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default secret in production")
	}

	cfg.JWTSecret = "a-real-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_TokenTTL(t *testing.T) {
	cfg := &Config{Env: "development", JWTSecret: "x", TokenTTLHours: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive token TTL")
	}
}
