package helpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskforge/manifestgen/internal/manifest"
)

// WriteTree creates the given slash-relative file paths (with parent
// directories) beneath root, each holding a short placeholder body.
// Usage:
//
//	helpers.WriteTree(t, contentDir, "a.txt", "sub/b.txt")
func WriteTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755), "Failed to create parent dirs: %s", p)
		require.NoError(t, os.WriteFile(full, []byte("fixture"), 0644), "Failed to write fixture file: %s", p)
	}
}

// MkDirs creates the given slash-relative directories beneath root
// without placing any files in them.
func MkDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755), "Failed to create dir: %s", d)
	}
}

// ReadManifest unmarshals a manifest file written by the generator.
func ReadManifest(t *testing.T, path string) *manifest.Manifest {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read manifest: %s", path)

	var m manifest.Manifest
	require.NoError(t, json.Unmarshal(data, &m), "Failed to unmarshal manifest: %s", path)
	return &m
}
