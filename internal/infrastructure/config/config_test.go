package config_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageBackend != config.BackendMemory {
		t.Fatalf("expected default backend memory, got %s", cfg.StorageBackend)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.RedisURL != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.RedisURL)
	}

	if !cfg.SystemSeedingEnabled {
		t.Fatal("expected system seeding enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("SYSTEM_ACCOUNT_FUNDS", "500.00")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageBackend != config.BackendPostgres {
		t.Fatalf("expected postgres backend, got %s", cfg.StorageBackend)
	}

	if cfg.DatabaseURL != "postgres://example" || cfg.RedisURL != "redis://example" {
		t.Fatalf("expected URL overrides, got %s / %s", cfg.DatabaseURL, cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" || cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected overrides, got port=%s timeout=%s", cfg.HTTPPort, cfg.DatabaseTimeout)
	}

	_, _, funds, err := cfg.SystemAccount()
	if err != nil {
		t.Fatalf("unexpected error parsing system account: %v", err)
	}

	if !funds.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("expected seed funds 500.00, got %s", funds)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestSystemAccountValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad account id", "SYSTEM_ACCOUNT_ID", "nope"},
		{"bad seed tx id", "SYSTEM_SEED_TX_ID", "nope"},
		{"bad funds", "SYSTEM_ACCOUNT_FUNDS", "lots"},
		{"negative funds", "SYSTEM_ACCOUNT_FUNDS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("unexpected load error: %v", err)
			}

			if _, _, _, err := cfg.SystemAccount(); err == nil {
				t.Fatal("expected system account validation error")
			}
		})
	}
}
