package models

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds configuration for the dependency checker
type Config struct {
	// RootDir is the project directory holding both manifests
	RootDir string `toml:"-"`

	// Manifest locations, relative to RootDir unless absolute
	PackageJSON  string `toml:"package_json"`
	Requirements string `toml:"requirements"`

	// Package manager executables
	NpmPath    string `toml:"npm"`
	PythonPath string `toml:"python"`

	// Independent runs the pip check even after the npm check fails
	Independent bool `toml:"independent"`

	// Output settings
	OutputFormat string `toml:"format"`    // "terminal", "json"
	LogLevel     string `toml:"log_level"` // zerolog level name
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		RootDir:      ".",
		PackageJSON:  "package.json",
		Requirements: "requirements.txt",
		NpmPath:      "npm",
		OutputFormat: "terminal",
		LogLevel:     "warn",
	}
}

// ConfigFileName is read from the root directory when present
const ConfigFileName = "depcheck.toml"

// LoadFile decodes a TOML config file over c. Unrecognized keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}
