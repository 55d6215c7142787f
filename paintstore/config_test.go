package paintstore

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFirstRun tests that a missing config file is created
// with defaults.
func TestLoadConfigFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texpaint", "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("first-run config = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}

	// Second load reads the file it just wrote.
	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Errorf("reloaded config = %+v, want %+v", again, cfg)
	}
}

// TestLoadConfigCustom tests reading operator-edited values, with
// missing keys falling back to defaults.
func TestLoadConfigCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "AutosaveSeconds = 5\nJPEGQuality = 95\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AutosaveSeconds != 5 || cfg.JPEGQuality != 95 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.RetryQuality != DefaultConfig().RetryQuality {
		t.Errorf("missing key did not default: %+v", cfg)
	}
}

// TestLoadConfigMalformed tests that a broken file yields defaults and
// an error.
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("= not toml ="), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("malformed config loaded without error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("malformed config = %+v, want defaults", cfg)
	}
}

// TestAutosaveInterval tests the zero-disables contract.
func TestAutosaveInterval(t *testing.T) {
	if d := (Config{AutosaveSeconds: 30}).autosaveInterval(); d.Seconds() != 30 {
		t.Errorf("interval = %v, want 30s", d)
	}
	if d := (Config{}).autosaveInterval(); d != 0 {
		t.Errorf("zero seconds gave interval %v", d)
	}
}
