package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be local config.toml (highest priority)
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", cfg.BaseURL)
	}
	if cfg.Limit != defaultLimit {
		t.Errorf("Limit = %d, want %d", cfg.Limit, defaultLimit)
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	dir := t.TempDir()
	configContent := `
base_url = "http://localhost:8080/"
limit = 5
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check that URL trailing slash is removed
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:8080")
	}

	if cfg.Limit != 5 {
		t.Errorf("Limit = %d, want 5", cfg.Limit)
	}
}

func TestLoad_InvalidLimitFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("limit = -3"), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Limit != defaultLimit {
		t.Errorf("Limit = %d, want %d", cfg.Limit, defaultLimit)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	chdir(t, dir)

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}
