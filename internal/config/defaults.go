package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Content defaults
	DefaultContentDir = "site/content"

	// Output defaults
	DefaultOutputFile = "dist/content/manifest.json"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultExcludedDirs returns the top-level directory names excluded from
// deep traversal. The abyss subtree lists its own contents at runtime, so
// only its root marker belongs in the static manifest.
func DefaultExcludedDirs() []string {
	return []string{"abyss"}
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".manifestgen"
	}
	return filepath.Join(home, ".manifestgen")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Content: ContentConfig{
			Directory: DefaultContentDir,
			Exclude:   DefaultExcludedDirs(),
			Ignore:    nil,
		},
		Output: OutputConfig{
			File: DefaultOutputFile,
			Gzip: false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
