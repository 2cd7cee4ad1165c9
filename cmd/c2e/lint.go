package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"c2e-dev/c2e/pkg/cli"
	"c2e-dev/c2e/pkg/codec"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
	"c2e-dev/c2e/pkg/gen"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate codec documents",
	Long: `Validate codec documents for syntax, schema, and compilation errors.

The lint command checks each document against the codec document schema
and then fully compiles it: guard syntax, emitter resolution (including
cycle detection), and rule-chain construction.

Examples:
  # Lint a single document
  c2e lint --file codecs/html.c2e

  # Lint a directory
  c2e lint --dir codecs

  # JSON output for CI/CD
  c2e lint --dir codecs --format json`,
	RunE: lintCodecs,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "codec document to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of codec documents")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult is the validation result for a single codec document.
type LintResult struct {
	File     string      `json:"file"`
	Target   string      `json:"target,omitempty"`
	Emitters []string    `json:"emitters,omitempty"`
	Valid    bool        `json:"valid"`
	Errors   []LintError `json:"errors,omitempty"`
}

// LintError is a single validation error.
type LintError struct {
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Type       string `json:"type,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func lintCodecs(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}
	if lintFlags.dir != "" {
		found, err := gen.DiscoverCodecs(lintFlags.dir)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no codec documents found")
	}

	var progress cli.ProgressReporter
	if lintFlags.format != "json" && len(files) > 1 {
		progress = cli.NewProgressReporter(os.Stderr, "linting")
		progress.Start(int64(len(files)))
	}

	results := make([]LintResult, 0, len(files))
	failed := 0
	for i, file := range files {
		result := lintFile(file)
		if !result.Valid {
			failed++
		}
		results = append(results, result)
		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if lintFlags.format == "json" {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, results); err != nil {
			return err
		}
	} else {
		printLintResults(results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed validation", failed, len(files))
	}
	return nil
}

// lintFile validates and compiles one codec document.
func lintFile(path string) LintResult {
	result := LintResult{File: path, Valid: true}

	c, err := codec.ParseAndValidateFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = lintErrors(err)
		return result
	}

	result.Target = c.Target()
	result.Emitters = c.Emitters()
	return result
}

// lintErrors flattens a compilation error into result rows.
func lintErrors(err error) []LintError {
	var errList *codecerrors.ErrorList
	if errors.As(err, &errList) {
		rows := make([]LintError, 0, errList.Count())
		for _, e := range errList.Errors {
			rows = append(rows, lintError(e))
		}
		return rows
	}

	var codecErr *codecerrors.Error
	if errors.As(err, &codecErr) {
		return []LintError{lintError(codecErr)}
	}
	return []LintError{{Message: err.Error()}}
}

func lintError(e *codecerrors.Error) LintError {
	return LintError{
		Line:       e.Location.Line,
		Column:     e.Location.Col,
		Type:       string(e.Type),
		Message:    e.Message,
		Suggestion: e.Suggestion,
	}
}

func printLintResults(results []LintResult) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.FgYellow).SprintFunc()

	for _, r := range results {
		if r.Valid {
			fmt.Printf("%s %s (target: %s, emitters: %v)\n", ok("✔"), r.File, r.Target, r.Emitters)
			continue
		}
		fmt.Printf("%s %s\n", bad("✘"), r.File)
		for _, e := range r.Errors {
			loc := ""
			if e.Line > 0 {
				loc = fmt.Sprintf("%d:%d: ", e.Line, e.Column)
			}
			fmt.Printf("    %s[%s] %s\n", loc, dim(e.Type), e.Message)
			if e.Suggestion != "" {
				fmt.Printf("      = suggestion: %s\n", e.Suggestion)
			}
		}
	}
}
