package paintstore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the operator-facing persistence knobs, kept in a TOML
// file so they can be tuned without a rebuild.
type Config struct {
	// AutosaveSeconds is the minimum interval between periodic saves.
	// Zero disables autosave.
	AutosaveSeconds int

	// JPEGQuality is the raster compression quality (1-100) for the
	// first save attempt.
	JPEGQuality int

	// RetryQuality is the reduced quality used for the single retry
	// after a storage-quota failure.
	RetryQuality int

	// HistoryDepth is the undo stack depth handed to new surfaces.
	HistoryDepth int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		AutosaveSeconds: 30,
		JPEGQuality:     80,
		RetryQuality:    50,
		HistoryDepth:    20,
	}
}

// autosaveInterval converts the configured seconds to a duration.
func (c Config) autosaveInterval() time.Duration {
	return time.Duration(c.AutosaveSeconds) * time.Second
}

// LoadConfig reads a TOML config file, creating it with defaults on
// first run.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := writeConfig(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("paintstore: read config: %w", err)
	}
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("paintstore: create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("paintstore: encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("paintstore: write config: %w", err)
	}
	return nil
}
