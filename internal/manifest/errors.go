package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrContentDirNotFound indicates the content directory does not exist
	ErrContentDirNotFound = errors.New("content directory not found")

	// ErrNotADirectory indicates the content path exists but is not a directory
	ErrNotADirectory = errors.New("content path is not a directory")
)
