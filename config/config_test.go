package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
api_key = "px_test_key"
base_url = "https://staging.pxshot.com"
timeout_ms = 5000
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "px_test_key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://staging.pxshot.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv(envAPIKey, "px_env_key")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "px_env_key" {
		t.Errorf("APIKey = %q, want env fallback", cfg.APIKey)
	}
	if cfg.BaseURL != "" || cfg.Timeout != 0 {
		t.Errorf("missing file should leave BaseURL/Timeout zero, got %q / %v", cfg.BaseURL, cfg.Timeout)
	}
}

func TestLoadFileKeyBeatsEnv(t *testing.T) {
	t.Setenv(envAPIKey, "px_env_key")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = "px_file_key"`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "px_file_key" {
		t.Errorf("APIKey = %q, want file to win over env", cfg.APIKey)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = [broken`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}
}

func TestResolvePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got, err := resolvePath("~/.config/pxshot/config.toml")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, ".config", "pxshot", "config.toml")
	if got != want {
		t.Errorf("resolvePath() = %q, want %q", got, want)
	}
}
