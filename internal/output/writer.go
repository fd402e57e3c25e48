package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/duskforge/manifestgen/internal/manifest"
	"github.com/duskforge/manifestgen/internal/utils"
)

// Writer serializes a manifest to its output path
type Writer struct {
	path   string
	gzip   bool
	dryRun bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// Path is the destination file; parent directories are created as
	// needed
	Path string

	// Gzip also writes a precompressed sibling next to the manifest
	Gzip bool

	// DryRun skips all filesystem writes
	DryRun bool
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		path:   opts.Path,
		gzip:   opts.Gzip,
		dryRun: opts.DryRun,
	}
}

// Write serializes the manifest with 2-space indentation and writes it to
// the output path, overwriting any existing file. Serialization happens
// before any filesystem mutation, so a marshal failure leaves no partial
// output behind.
func (w *Writer) Write(m *manifest.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if w.dryRun {
		return nil
	}

	if err := utils.EnsureDir(w.path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if w.gzip {
		if err := w.writeGzip(data); err != nil {
			return err
		}
	}

	return nil
}

// writeGzip writes the precompressed sibling
func (w *Writer) writeGzip(data []byte) error {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("init gzip writer: %w", err)
	}
	if _, err := gz.Write(data); err != nil {
		return fmt.Errorf("compress manifest: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compress manifest: %w", err)
	}

	if err := os.WriteFile(w.GzipPath(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write compressed manifest: %w", err)
	}
	return nil
}

// Path returns the manifest output path
func (w *Writer) Path() string {
	return w.path
}

// GzipPath returns the compressed sibling's path
func (w *Writer) GzipPath() string {
	return w.path + ".gz"
}

// Exists checks if the manifest file already exists
func (w *Writer) Exists() bool {
	_, err := os.Stat(w.path)
	return err == nil
}
