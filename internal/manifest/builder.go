package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"

	"github.com/duskforge/manifestgen/internal/utils"
)

// Builder collects a manifest from a content directory tree
type Builder struct {
	contentDir string
	exclude    map[string]bool
	ignore     []string
	logger     *utils.Logger
	progress   bool
}

// BuilderOptions contains options for the builder
type BuilderOptions struct {
	// ContentDir is the root of the content tree to traverse
	ContentDir string

	// Exclude lists top-level directory names recorded as markers but
	// never traversed
	Exclude []string

	// Ignore lists doublestar glob patterns matched against
	// slash-relative paths; matching entries are dropped entirely
	Ignore []string

	// Logger for traversal diagnostics; defaults to the standard logger
	Logger *utils.Logger

	// Progress enables an indeterminate progress bar during the walk
	Progress bool
}

// NewBuilder creates a new manifest builder
func NewBuilder(opts BuilderOptions) *Builder {
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Builder{
		contentDir: opts.ContentDir,
		exclude:    exclude,
		ignore:     opts.Ignore,
		logger:     logger.WithComponent("builder"),
		progress:   opts.Progress,
	}
}

// Collect walks the content tree and returns the sorted manifest.
// The walk is a single sequential pass; no partial manifest is ever
// produced on error.
func (b *Builder) Collect(ctx context.Context) (*Manifest, error) {
	info, err := os.Stat(b.contentDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrContentDirNotFound, b.contentDir)
	}
	if err != nil {
		return nil, fmt.Errorf("stat content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, b.contentDir)
	}

	m := New()
	dirs := make(map[string]struct{})

	var bar *progressbar.ProgressBar
	if b.progress {
		bar = utils.NewProgressBar(-1, utils.DescWalking)
	}

	walkErr := filepath.WalkDir(b.contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == b.contentDir {
			return nil
		}

		rel, err := utils.RelSlash(b.contentDir, path)
		if err != nil {
			return err
		}
		segments := utils.PathSegments(rel)
		if len(segments) == 0 {
			return nil
		}

		if bar != nil {
			_ = bar.Add(1)
		}

		// An excluded top-level directory is recorded as a bare marker
		// and its subtree never traversed. A root-level regular file
		// sharing an excluded name is still tracked normally.
		if b.exclude[segments[0]] && len(segments) == 1 && d.IsDir() {
			dirs[segments[0]] = struct{}{}
			b.logger.Debug().Str("dir", segments[0]).Msg("Recorded excluded subtree marker")
			return fs.SkipDir
		}

		for _, pattern := range b.ignore {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				b.logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("Ignored by pattern")
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		// Record the file and every ancestor directory level
		var dirPath string
		if len(segments) > 1 {
			dirPath = strings.Join(segments[:len(segments)-1], "/")
			for i := 1; i < len(segments); i++ {
				dirs[strings.Join(segments[:i], "/")] = struct{}{}
			}
		}
		m.Files = append(m.Files, FileEntry{
			Name: segments[len(segments)-1],
			Path: dirPath,
		})
		return nil
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", b.contentDir, walkErr)
	}

	for dir := range dirs {
		m.Directories = append(m.Directories, dir)
	}
	m.Sort()

	b.logger.Debug().
		Int("files", m.FileCount()).
		Int("directories", m.DirectoryCount()).
		Msg("Collected content tree")

	return m, nil
}
