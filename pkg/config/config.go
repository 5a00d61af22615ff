// Package config resolves where ag-note keeps its data. The storage
// directory can come from an explicit override, the environment, the shared
// ag config file, or the built-in default, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvStorageDir is the environment variable that overrides the notes
// storage directory.
const EnvStorageDir = "AGENTIC_NOTES_DIR"

// File models the shared ag CLI configuration file. ag-note only reads the
// notes section; other sections belong to other subcommands.
type File struct {
	Notes NotesSection `yaml:"notes"`
}

// NotesSection holds the ag-note settings.
type NotesSection struct {
	StorageDir string `yaml:"storage_dir"`
}

// Load reads and parses a YAML config file. A missing file is reported via
// os.ErrNotExist so callers can treat it as "no config present".
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// ResolveStorageDir picks the notes storage directory. Precedence: the
// explicit override (normally a -dir flag), EnvStorageDir, the storage_dir
// key in the ag config file, then DefaultStorageDir. A config file that
// exists but cannot be parsed is a fatal configuration error.
func ResolveStorageDir(override string) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return resolveStorageDir(override, os.Getenv(EnvStorageDir), path)
}

func resolveStorageDir(override, envDir, configPath string) (string, error) {
	if override != "" {
		return override, nil
	}
	if envDir != "" {
		return envDir, nil
	}

	cfg, err := Load(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file; fall through to the default.
	case err != nil:
		return "", err
	case cfg.Notes.StorageDir != "":
		return cfg.Notes.StorageDir, nil
	}

	return DefaultStorageDir()
}
