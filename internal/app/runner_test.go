package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskforge/manifestgen/internal/config"
	"github.com/duskforge/manifestgen/internal/manifest"
)

func testConfig(contentDir, outputFile string) *config.Config {
	cfg := config.Default()
	cfg.Content.Directory = contentDir
	cfg.Output.File = outputFile
	cfg.Logging.Format = "json" // keep test output clean
	cfg.Logging.Level = "error"
	return cfg
}

func TestNewRunner(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := NewRunner(RunnerOptions{})
		require.Error(t, err)
	})

	t.Run("with config", func(t *testing.T) {
		r, err := NewRunner(RunnerOptions{Config: config.Default()})
		require.NoError(t, err)
		assert.NotNil(t, r)
	})
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("builds and writes the manifest", func(t *testing.T) {
		tmpDir := t.TempDir()
		contentDir := filepath.Join(tmpDir, "content")
		outputFile := filepath.Join(tmpDir, "dist", "manifest.json")

		require.NoError(t, os.MkdirAll(filepath.Join(contentDir, "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "a.txt"), []byte("a"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "sub", "b.txt"), []byte("b"), 0644))
		require.NoError(t, os.MkdirAll(filepath.Join(contentDir, "abyss", "deep"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "abyss", "deep", "x.txt"), []byte("x"), 0644))

		var stdout bytes.Buffer
		r, err := NewRunner(RunnerOptions{
			Config: testConfig(contentDir, outputFile),
			Stdout: &stdout,
		})
		require.NoError(t, err)

		m, err := r.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, []manifest.FileEntry{
			{Name: "a.txt", Path: ""},
			{Name: "b.txt", Path: "sub"},
		}, m.Files)
		assert.Equal(t, []string{"abyss", "sub"}, m.Directories)

		// Output file round-trips to the same manifest
		data, err := os.ReadFile(outputFile)
		require.NoError(t, err)
		var got manifest.Manifest
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, m, &got)

		// Confirmation lines
		assert.Contains(t, stdout.String(), "Generated manifest with 2 files and 2 directories")
		assert.Contains(t, stdout.String(), "Manifest saved to "+outputFile)
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		tmpDir := t.TempDir()
		contentDir := filepath.Join(tmpDir, "content")
		outputFile := filepath.Join(tmpDir, "dist", "manifest.json")
		require.NoError(t, os.MkdirAll(contentDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "a.txt"), []byte("a"), 0644))

		var stdout bytes.Buffer
		r, err := NewRunner(RunnerOptions{
			Config: testConfig(contentDir, outputFile),
			DryRun: true,
			Stdout: &stdout,
		})
		require.NoError(t, err)

		_, err = r.Run(ctx)
		require.NoError(t, err)

		_, err = os.Stat(outputFile)
		assert.True(t, os.IsNotExist(err))
		assert.Contains(t, stdout.String(), "Dry run")
	})

	t.Run("missing content dir fails without writing", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputFile := filepath.Join(tmpDir, "dist", "manifest.json")

		r, err := NewRunner(RunnerOptions{
			Config: testConfig(filepath.Join(tmpDir, "missing"), outputFile),
			Stdout: &bytes.Buffer{},
		})
		require.NoError(t, err)

		_, err = r.Run(ctx)
		require.ErrorIs(t, err, manifest.ErrContentDirNotFound)

		_, statErr := os.Stat(outputFile)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("idempotent across runs", func(t *testing.T) {
		tmpDir := t.TempDir()
		contentDir := filepath.Join(tmpDir, "content")
		outputFile := filepath.Join(tmpDir, "manifest.json")
		require.NoError(t, os.MkdirAll(filepath.Join(contentDir, "x", "y"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "x", "y", "f.txt"), []byte("f"), 0644))

		r, err := NewRunner(RunnerOptions{
			Config: testConfig(contentDir, outputFile),
			Stdout: &bytes.Buffer{},
		})
		require.NoError(t, err)

		_, err = r.Run(ctx)
		require.NoError(t, err)
		first, err := os.ReadFile(outputFile)
		require.NoError(t, err)

		_, err = r.Run(ctx)
		require.NoError(t, err)
		second, err := os.ReadFile(outputFile)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
