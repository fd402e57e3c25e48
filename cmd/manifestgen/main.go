package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duskforge/manifestgen/internal/app"
	"github.com/duskforge/manifestgen/internal/config"
	"github.com/duskforge/manifestgen/internal/utils"
	"github.com/duskforge/manifestgen/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manifestgen",
	Short: "Generate a content manifest for the site",
	Long: `Manifestgen walks the site's content directory and writes a JSON
manifest listing every file and directory. Top-level directories in the
exclusion set (by default, abyss) are recorded as bare markers without
being traversed, since the site lists their contents lazily at runtime.

Running with no arguments builds site/content into
dist/content/manifest.json.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.manifestgen/config.yaml)")
	rootCmd.PersistentFlags().String("content", config.DefaultContentDir, "Content directory to walk")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputFile, "Manifest output file")
	rootCmd.PersistentFlags().StringSlice("exclude", config.DefaultExcludedDirs(), "Top-level directories recorded but not traversed")
	rootCmd.PersistentFlags().StringSlice("ignore", nil, "Glob patterns to drop from the manifest")
	rootCmd.PersistentFlags().Bool("gzip", false, "Also write a precompressed manifest.json.gz")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Walk and report without writing files")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a progress bar during the walk")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("content.directory", rootCmd.PersistentFlags().Lookup("content"))
	_ = viper.BindPFlag("content.exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("content.ignore", rootCmd.PersistentFlags().Lookup("ignore"))
	_ = viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.gzip", rootCmd.PersistentFlags().Lookup("gzip"))

	// Add subcommands
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	// Get flags
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	progress, _ := cmd.Flags().GetBool("progress")

	// Create runner
	runner, err := app.NewRunner(app.RunnerOptions{
		Config:   cfg,
		Verbose:  verbose,
		DryRun:   dryRun,
		Progress: progress,
	})
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	// Run generation
	_, err = runner.Run(ctx)
	return err
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check generation prerequisites",
	Long:  "Verifies that the content directory and output location are usable before a real run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking generation prerequisites...")
		allPassed := true

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Check 1: Content directory
		fmt.Print("  Content directory: ")
		if info, err := os.Stat(cfg.Content.Directory); err == nil && info.IsDir() {
			fmt.Printf("OK (%s)\n", cfg.Content.Directory)
		} else {
			fmt.Printf("NOT FOUND (%s)\n", cfg.Content.Directory)
			allPassed = false
		}

		// Check 2: Output location writable
		fmt.Print("  Output location: ")
		if checkOutputWritable(cfg.Output.File) {
			fmt.Printf("OK (%s)\n", cfg.Output.File)
		} else {
			fmt.Printf("FAILED (%s)\n", cfg.Output.File)
			allPassed = false
		}

		// Check 3: Config file
		fmt.Print("  Config file: ")
		if _, err := os.Stat(config.ConfigFilePath()); err != nil {
			fmt.Println("NONE (using defaults)")
		} else {
			fmt.Println("OK")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkOutputWritable checks that the manifest's parent chain can be
// created and written to
func checkOutputWritable(path string) bool {
	if err := utils.EnsureDir(path); err != nil {
		return false
	}
	tmpFile := path + ".writecheck"
	f, err := os.Create(tmpFile)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(tmpFile)
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
