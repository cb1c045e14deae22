// Package config manages noema's persisted configuration (the notes root)
// and environment overrides for runtime settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFilename = "config.toml"

// ErrNotADirectory is returned when a configured path is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Config is the persisted configuration, stored as TOML in the app data
// directory.
type Config struct {
	// NotesRoot is the user's notes directory, chosen by them.
	NotesRoot string `toml:"notes_root,omitempty"`
}

// Load reads the config file from the app data directory. A missing or
// unreadable file yields the zero config rather than an error.
func Load() Config {
	dir, err := DataDir()
	if err != nil {
		return Config{}
	}
	data, err := os.ReadFile(filepath.Join(dir, configFilename))
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save writes the config to the app data directory.
func Save(cfg Config) error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFilename), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// NotesRoot returns the configured notes root, or "" when none is set.
func NotesRoot() string {
	return Load().NotesRoot
}

// SetNotesRoot validates path and persists it as the notes root.
func SetNotesRoot(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	cfg := Load()
	cfg.NotesRoot = abs
	return Save(cfg)
}
