package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "noema"

// DataDir returns the directory where noema keeps its own state (config,
// future index caches). User notes stay in the folder the user chose; only
// app state lives here. The directory is created if missing.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine app data directory: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create app data directory: %w", err)
	}
	return dir, nil
}
