package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStorageDir returns the conventional notes location under the
// user's home directory: ~/Agentic/shared/notes. The directory is shared
// with other ag tooling, which is why it does not live under ~/.agentic.
func DefaultStorageDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, "Agentic", "shared", "notes"), nil
}

// ConfigPath returns the location of the shared ag config file,
// ~/.agentic/config.yaml. The file is optional.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".agentic", "config.yaml"), nil
}
