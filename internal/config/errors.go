package config

import "errors"

// Sentinel errors for the config package
var (
	// ErrEmptySegment indicates an excluded directory name is empty
	ErrEmptySegment = errors.New("excluded directory name cannot be empty")

	// ErrInvalidPattern indicates an ignore glob pattern is malformed
	ErrInvalidPattern = errors.New("invalid ignore pattern")
)
