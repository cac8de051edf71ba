// Package config loads CLI configuration for README generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2rst/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxVersionLength = 50   // "1.0.2", "v2.3.1-rc1"
	MaxBinaryLength  = 255  // executable name or path component
	MaxPathLength    = 1024 // README and workspace paths
)

// Config holds all configuration for README generation.
type Config struct {
	Version   string          `yaml:"version"`   // Opaque package version string, never validated
	CreateRST bool            `yaml:"createRst"` // true = persist generated RST, false = delete the artifact
	Readme    ReadmeConfig    `yaml:"readme"`
	Pandoc    PandocConfig    `yaml:"pandoc"`
	Workspace WorkspaceConfig `yaml:"workspace"`
}

// ReadmeConfig defines the source and artifact paths.
type ReadmeConfig struct {
	Markdown string `yaml:"markdown"` // Markdown source (default "README.md")
	RST      string `yaml:"rst"`      // RST artifact (default "README.rst")
}

// PandocConfig defines the external converter boundary.
type PandocConfig struct {
	Binary string `yaml:"binary"` // Executable name or path (default "pandoc")
}

// WorkspaceConfig defines the generation workspace marker.
type WorkspaceConfig struct {
	Path string `yaml:"path"` // Symlink whose presence triggers regeneration (default "pandoc")
}

// DefaultConfig returns the configuration the original distribution script ships with:
// regeneration persists the RST artifact, standard README paths, pandoc on PATH.
func DefaultConfig() *Config {
	return &Config{
		Version:   "",
		CreateRST: true,
		Readme:    ReadmeConfig{Markdown: "README.md", RST: "README.rst"},
		Pandoc:    PandocConfig{Binary: "pandoc"},
		Workspace: WorkspaceConfig{Path: "pandoc"},
	}
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("version", c.Version, MaxVersionLength); err != nil {
		return err
	}
	if err := validateFieldLength("pandoc.binary", c.Pandoc.Binary, MaxBinaryLength); err != nil {
		return err
	}
	if err := validateFieldLength("readme.markdown", c.Readme.Markdown, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("readme.rst", c.Readme.RST, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("workspace.path", c.Workspace.Path, MaxPathLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2rst/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2rst", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
