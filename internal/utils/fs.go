package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir ensures the parent directory of path exists, creating it if necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// RelSlash returns the slash-normalized path of target relative to base.
// Returns "." when target equals base.
func RelSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// PathSegments splits a slash-separated relative path into its components,
// dropping empty segments and the "." produced by a base-relative path.
func PathSegments(rel string) []string {
	if rel == "" || rel == "." {
		return nil
	}
	parts := strings.Split(rel, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" && p != "." {
			segments = append(segments, p)
		}
	}
	return segments
}
