package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_FILE", "PORT", "LISTEN_ADDR", "SESSION_SECRET", "GIN_MODE", "STORE_BACKEND", "LOG_LEVEL", "DEFAULT_LANGUAGE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.ListenAddr)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.StoreBackend)
	}
	if cfg.GinMode != "release" || cfg.LogLevel != "info" || cfg.DefaultLanguage != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionSecret == "" {
		t.Fatal("expected a default session secret")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "habitgrid.yaml")
	content := []byte("port: \"9000\"\nstore_backend: sqlite\nlog_level: debug\ndefault_language: zh\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr from file port, got %q", cfg.ListenAddr)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.StoreBackend)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env to win, got %q", cfg.LogLevel)
	}
	if cfg.DefaultLanguage != "zh" {
		t.Fatalf("expected zh, got %q", cfg.DefaultLanguage)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg != (AppConfig{}) {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [oops"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
