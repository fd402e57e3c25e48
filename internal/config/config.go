package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config represents the application configuration
type Config struct {
	Content ContentConfig `mapstructure:"content" yaml:"content"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ContentConfig contains content traversal settings
type ContentConfig struct {
	Directory string   `mapstructure:"directory" yaml:"directory"`
	Exclude   []string `mapstructure:"exclude" yaml:"exclude"`
	Ignore    []string `mapstructure:"ignore" yaml:"ignore"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	File string `mapstructure:"file" yaml:"file"`
	Gzip bool   `mapstructure:"gzip" yaml:"gzip"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for missing values
func (c *Config) Validate() error {
	if c.Content.Directory == "" {
		c.Content.Directory = DefaultContentDir
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Content.Exclude == nil {
		c.Content.Exclude = DefaultExcludedDirs()
	}
	for _, seg := range c.Content.Exclude {
		if seg == "" {
			return fmt.Errorf("content.exclude: %w", ErrEmptySegment)
		}
	}
	for _, pattern := range c.Content.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("content.ignore: %w: %s", ErrInvalidPattern, pattern)
		}
	}
	return nil
}
