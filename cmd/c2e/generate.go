package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"c2e-dev/c2e/pkg/gen"
)

var generateFlags struct {
	codecDir    string
	templateDir string
	outputDir   string
	languages   []string
	jobs        int
	dryRun      bool
	keepGoing   bool
	watch       bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile codecs and generate encoder source files",
	Long: `Compile every codec document in the codec directory and render them
through the language packs in the template directory.

Examples:
  # Generate all languages
  c2e generate

  # One language, custom directories
  c2e generate --codec-dir codecs --template-dir templates --language java

  # Check that everything compiles without writing files
  c2e generate --dry

  # Keep regenerating as codecs or templates change
  c2e generate --watch`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.codecDir, "codec-dir", "C", "", "directory of codec documents")
	generateCmd.Flags().StringVarP(&generateFlags.templateDir, "template-dir", "T", "", "directory of language packs")
	generateCmd.Flags().StringVarP(&generateFlags.outputDir, "output", "o", "", "output directory")
	generateCmd.Flags().StringSliceVarP(&generateFlags.languages, "language", "l", nil, "language pack(s) to generate")
	generateCmd.Flags().IntVarP(&generateFlags.jobs, "jobs", "j", 0, "parallel codec compilations")
	generateCmd.Flags().BoolVarP(&generateFlags.dryRun, "dry", "d", false, "compile and report, write nothing")
	generateCmd.Flags().BoolVar(&generateFlags.keepGoing, "keep-going", false, "skip codec documents that fail to compile")
	generateCmd.Flags().BoolVarP(&generateFlags.watch, "watch", "w", false, "regenerate on changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	// Flags override config.
	if generateFlags.codecDir != "" {
		cfg.CodecDir = generateFlags.codecDir
	}
	if generateFlags.templateDir != "" {
		cfg.TemplateDir = generateFlags.templateDir
	}
	if generateFlags.outputDir != "" {
		cfg.OutputDir = generateFlags.outputDir
	}
	if len(generateFlags.languages) > 0 {
		cfg.Languages = generateFlags.languages
	}
	if generateFlags.jobs > 0 {
		cfg.Jobs = generateFlags.jobs
	}

	driver := gen.NewDriver(gen.Options{
		CodecDir:    cfg.CodecDir,
		TemplateDir: cfg.TemplateDir,
		OutputDir:   cfg.OutputDir,
		Languages:   cfg.Languages,
		Jobs:        cfg.Jobs,
		DryRun:      generateFlags.dryRun,
		KeepGoing:   generateFlags.keepGoing,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := driver.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("compiled %d codec(s): %v\n", len(report.Targets), report.Targets)
	for _, f := range report.Files {
		if generateFlags.dryRun {
			fmt.Printf("  would write %s\n", f)
		} else {
			fmt.Printf("  wrote %s\n", f)
		}
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "  skipped %s: %v\n", failure.Path, failure.Err)
	}

	if generateFlags.watch {
		return driver.Watch(ctx)
	}
	return nil
}
