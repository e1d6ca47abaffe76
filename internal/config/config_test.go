package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://testnet.binance.vision
database:
  host: localhost
  port: 5432
  name: market_data
  user: ingestor
  password: testpass
symbols:
  - BTCUSDT
  - ETHUSDT
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://testnet.binance.vision" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://testnet.binance.vision")
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "BTCUSDT" {
		t.Errorf("Symbols = %v, want [BTCUSDT ETHUSDT]", cfg.Symbols)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: market_data
  user: ingestor
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: market_data
  user: ingestor
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 30*time.Second)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if len(cfg.Symbols) != len(DefaultSymbols) {
		t.Errorf("Symbols = %v, want defaults %v", cfg.Symbols, DefaultSymbols)
	}
	if cfg.Pipeline.KlineInterval != DefaultKlineInterval {
		t.Errorf("Pipeline.KlineInterval = %q, want %q", cfg.Pipeline.KlineInterval, DefaultKlineInterval)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		yaml := `
database:
  host: localhost
  name: market_data
  user: ingestor
  password: testpass
`
		path := writeTempFile(t, yaml)
		if _, err := LoadAndValidate(path); err != nil {
			t.Errorf("LoadAndValidate failed: %v", err)
		}
	})

	t.Run("missing database host", func(t *testing.T) {
		yaml := `
database:
  name: market_data
  user: ingestor
  password: testpass
`
		path := writeTempFile(t, yaml)
		if _, err := LoadAndValidate(path); err == nil {
			t.Error("expected validation error for missing host")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadAndValidate(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{
			Database: DBConfig{Host: "localhost", Name: "db", User: "u", Password: "p"},
		}
		c.applyDefaults()
		return c
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty symbol", func(t *testing.T) {
		c := valid()
		c.Symbols = []string{"BTCUSDT", ""}
		if err := c.Validate(); err == nil {
			t.Error("expected error for empty symbol")
		}
	})

	t.Run("min conns exceed max", func(t *testing.T) {
		c := valid()
		c.Database.MinConns = 20
		if err := c.Validate(); err == nil {
			t.Error("expected error for min_conns > max_conns")
		}
	})

	t.Run("bad metrics port", func(t *testing.T) {
		c := valid()
		c.Metrics.Port = 70000
		if err := c.Validate(); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})
}
