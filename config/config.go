package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/floatingpurr/sync-with-pdm/internal/domain/entities"
)

const (
	// DefaultHookConfigFile is the pre-commit configuration synchronized by default.
	DefaultHookConfigFile = ".pre-commit-config.yaml"
	// DefaultManifestFile is the project manifest read by default.
	DefaultManifestFile = "pyproject.toml"
)

// ErrNotFound is returned by FindConfigFile when no settings file exists.
var ErrNotFound = errors.New("settings file not found in default locations")

// Settings is the optional tool configuration (.sync-with-pdm.yaml).
// Command-line flags take precedence over every field.
type Settings struct {
	All      bool                       `yaml:"all"`      // Scan main and optional dependencies too
	Skip     []string                   `yaml:"skip"`     // Packages to leave alone
	Config   string                     `yaml:"config"`   // Path of the pre-commit config
	Manifest string                     `yaml:"manifest"` // Path of pyproject.toml
	Mapping  entities.DependencyMapping `yaml:"mapping"`  // Extra or replacement mapping entries
}

// Load reads and parses a settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the settings file
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in the standard locations under baseDir.
// Returns the path to the first file found or ErrNotFound.
func FindConfigFile(baseDir string) (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		".sync-with-pdm.yaml",
		".sync-with-pdm.yml",
		"sync-with-pdm.yaml",
		"sync-with-pdm.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(baseDir, loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrNotFound
}

// ResolvePath returns path relative to baseDir, or fallback when path is empty.
// Absolute paths are returned unchanged.
func ResolvePath(baseDir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// validate checks the settings values.
func validate(settings *Settings) error {
	for i, name := range settings.Skip {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("skip[%d] must not be empty", i)
		}
	}

	if err := settings.Mapping.Validate(); err != nil {
		return fmt.Errorf("mapping: %w", err)
	}

	return nil
}
