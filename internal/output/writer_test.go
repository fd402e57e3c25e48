package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskforge/manifestgen/internal/manifest"
)

func sampleManifest() *manifest.Manifest {
	m := manifest.New()
	m.Files = append(m.Files,
		manifest.FileEntry{Name: "a.txt", Path: ""},
		manifest.FileEntry{Name: "b.txt", Path: "sub"},
	)
	m.Directories = append(m.Directories, "sub")
	return m
}

func TestWriter_Write(t *testing.T) {
	t.Run("writes manifest to file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path})

		err := w.Write(sampleManifest())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got manifest.Manifest
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, sampleManifest(), &got)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "dist", "content", "manifest.json")
		w := NewWriter(WriterOptions{Path: path})

		err := w.Write(manifest.New())
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

		w := NewWriter(WriterOptions{Path: path})
		err := w.Write(manifest.New())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"files": [], "directories": []}`, string(data))
	})

	t.Run("uses two-space indentation", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path})

		err := w.Write(sampleManifest())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "  \"files\": [")
		assert.Contains(t, string(data), "    {\n      \"name\": \"a.txt\",")
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path, DryRun: true})

		err := w.Write(sampleManifest())
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("idempotent output bytes", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path})

		require.NoError(t, w.Write(sampleManifest()))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, w.Write(sampleManifest()))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unwritable output location", func(t *testing.T) {
		tmpDir := t.TempDir()
		blocker := filepath.Join(tmpDir, "dist")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		w := NewWriter(WriterOptions{Path: filepath.Join(blocker, "manifest.json")})
		err := w.Write(manifest.New())
		assert.Error(t, err)
	})
}

func TestWriter_Gzip(t *testing.T) {
	t.Run("writes compressed sibling", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path, Gzip: true})

		err := w.Write(sampleManifest())
		require.NoError(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		compressed, err := os.ReadFile(path + ".gz")
		require.NoError(t, err)

		gz, err := gzip.NewReader(bytes.NewReader(compressed))
		require.NoError(t, err)
		defer gz.Close()

		var decompressed bytes.Buffer
		_, err = decompressed.ReadFrom(gz)
		require.NoError(t, err)
		assert.Equal(t, raw, decompressed.Bytes())
	})

	t.Run("no sibling when disabled", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "manifest.json")
		w := NewWriter(WriterOptions{Path: path})

		require.NoError(t, w.Write(sampleManifest()))

		_, err := os.Stat(path + ".gz")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriter_Paths(t *testing.T) {
	w := NewWriter(WriterOptions{Path: "dist/content/manifest.json"})

	assert.Equal(t, "dist/content/manifest.json", w.Path())
	assert.Equal(t, "dist/content/manifest.json.gz", w.GzipPath())
}

func TestWriter_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.json")
	w := NewWriter(WriterOptions{Path: path})

	assert.False(t, w.Exists())
	require.NoError(t, w.Write(manifest.New()))
	assert.True(t, w.Exists())
}
