package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/duskforge/manifestgen/internal/config"
	"github.com/duskforge/manifestgen/internal/manifest"
	"github.com/duskforge/manifestgen/internal/output"
	"github.com/duskforge/manifestgen/internal/utils"
)

// Runner coordinates the manifest generation process
type Runner struct {
	config   *config.Config
	logger   *utils.Logger
	stdout   io.Writer
	dryRun   bool
	progress bool
}

// RunnerOptions contains options for creating a runner
type RunnerOptions struct {
	Config   *config.Config
	Verbose  bool
	DryRun   bool
	Progress bool

	// Stdout receives the confirmation lines; defaults to os.Stdout
	Stdout io.Writer
}

// NewRunner creates a new runner with the given configuration
func NewRunner(opts RunnerOptions) (*Runner, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := config.DefaultLogLevel
	logFormat := config.DefaultLogFormat
	if cfg.Logging.Level != "" {
		logLevel = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		logFormat = cfg.Logging.Format
	}
	if opts.Verbose {
		logLevel = "debug"
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  logFormat,
		Verbose: opts.Verbose,
	})

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Runner{
		config:   cfg,
		logger:   logger,
		stdout:   stdout,
		dryRun:   opts.DryRun,
		progress: opts.Progress,
	}, nil
}

// Run walks the content tree, writes the manifest, and prints the
// confirmation summary. The manifest is returned for callers that want
// to inspect it.
func (r *Runner) Run(ctx context.Context) (*manifest.Manifest, error) {
	startTime := time.Now()

	r.logger.Info().
		Str("content", r.config.Content.Directory).
		Str("output", r.config.Output.File).
		Strs("exclude", r.config.Content.Exclude).
		Msg("Starting manifest generation")

	builder := manifest.NewBuilder(manifest.BuilderOptions{
		ContentDir: r.config.Content.Directory,
		Exclude:    r.config.Content.Exclude,
		Ignore:     r.config.Content.Ignore,
		Logger:     r.logger,
		Progress:   r.progress,
	})

	m, err := builder.Collect(ctx)
	if err != nil {
		return nil, err
	}

	writer := output.NewWriter(output.WriterOptions{
		Path:   r.config.Output.File,
		Gzip:   r.config.Output.Gzip,
		DryRun: r.dryRun,
	})

	if err := writer.Write(m); err != nil {
		return nil, err
	}

	r.logger.Info().
		Int("files", m.FileCount()).
		Int("directories", m.DirectoryCount()).
		Dur("elapsed", time.Since(startTime)).
		Msg("Manifest generation complete")

	fmt.Fprintf(r.stdout, "✓ Generated manifest with %d files and %d directories\n",
		m.FileCount(), m.DirectoryCount())
	if r.dryRun {
		fmt.Fprintf(r.stdout, "✓ Dry run: skipped writing %s\n", writer.Path())
	} else {
		fmt.Fprintf(r.stdout, "✓ Manifest saved to %s\n", writer.Path())
	}

	return m, nil
}
