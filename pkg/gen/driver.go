package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"c2e-dev/c2e/pkg/codec"
	"c2e-dev/c2e/pkg/codec/format"
)

// codecExtensions are the file extensions considered codec documents during
// discovery.
var codecExtensions = map[string]bool{
	".c2e":  true,
	".yaml": true,
	".yml":  true,
}

// Options configures a generation driver.
type Options struct {
	CodecDir    string       // directory searched for codec documents
	TemplateDir string       // directory of language packs
	OutputDir   string       // root of generated output
	Languages   []string     // language names to generate; empty means all
	Jobs        int          // parallel codec compilations; <=0 means 4
	DryRun      bool         // compile and report, write nothing
	KeepGoing   bool         // skip failing documents instead of aborting
	Logger      *slog.Logger // nil means slog.Default()
}

// Failure records one codec document that failed to compile.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes one generation run.
type Report struct {
	RunID    string        // unique id of this run
	Targets  []string      // targets compiled, in registration order
	Files    []string      // files written (or that would be, when dry-run)
	Failures []Failure     // skipped documents (keep-going mode only)
	Duration time.Duration // wall time of the run
}

// Driver runs codec compilation and code generation end to end.
type Driver struct {
	opts   Options
	logger *slog.Logger
}

// NewDriver creates a driver with the given options.
func NewDriver(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = 4
	}
	return &Driver{opts: opts, logger: logger}
}

// DiscoverCodecs returns the codec document paths under dir, sorted.
func DiscoverCodecs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading codec dir: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if codecExtensions[filepath.Ext(entry.Name())] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Run compiles every discovered codec document and generates output for
// every selected language pack.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	logger := d.logger.With("run_id", report.RunID)

	paths, err := DiscoverCodecs(d.opts.CodecDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no codec documents found in %s", d.opts.CodecDir)
	}
	logger.Info("discovered codecs", "count", len(paths), "dir", d.opts.CodecDir)

	encoder, failures, err := d.compileAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	report.Failures = failures
	for _, c := range encoder.Codecs() {
		report.Targets = append(report.Targets, c.Target())
	}
	logger.Info("compiled codecs", "targets", report.Targets, "failures", len(failures))

	langs, err := d.selectLanguages()
	if err != nil {
		return nil, err
	}

	for _, lang := range langs {
		files, err := d.generateLanguage(lang, encoder)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", lang.Name, err)
		}
		report.Files = append(report.Files, files...)
		logger.Info("generated language", "language", lang.Name, "files", len(files))
	}

	report.Duration = time.Since(start)
	return report, nil
}

// compileAll compiles codec documents with a bounded worker pool. Documents
// are independent, so compilation is parallel; registration happens on one
// goroutine afterwards, in discovery order, so encoder contents are
// deterministic.
func (d *Driver) compileAll(ctx context.Context, paths []string) (*codec.Encoder, []Failure, error) {
	type outcome struct {
		codec *codec.Codec
		err   error
	}
	outcomes := make([]outcome, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.opts.Jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				c, err := codec.ParseAndValidateFile(paths[i])
				outcomes[i] = outcome{codec: c, err: err}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	encoder := codec.NewEncoder()
	var failures []Failure
	for i, out := range outcomes {
		if out.err != nil {
			if !d.opts.KeepGoing {
				return nil, nil, fmt.Errorf("compiling %s: %w", paths[i], out.err)
			}
			d.logger.Warn("skipping codec document", "path", paths[i], "error", out.err)
			failures = append(failures, Failure{Path: paths[i], Err: out.err})
			continue
		}
		if err := encoder.Add(out.codec); err != nil {
			if !d.opts.KeepGoing {
				return nil, nil, fmt.Errorf("registering %s: %w", paths[i], err)
			}
			d.logger.Warn("skipping codec document", "path", paths[i], "error", err)
			failures = append(failures, Failure{Path: paths[i], Err: err})
		}
	}
	return encoder, failures, nil
}

// selectLanguages loads the language packs named in the options, or all
// packs under the template dir when none were named.
func (d *Driver) selectLanguages() ([]*Language, error) {
	langs, err := DiscoverLanguages(d.opts.TemplateDir)
	if err != nil {
		return nil, err
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no language packs found in %s", d.opts.TemplateDir)
	}
	if len(d.opts.Languages) == 0 {
		return langs, nil
	}

	byName := make(map[string]*Language, len(langs))
	for _, lang := range langs {
		byName[lang.Name] = lang
	}
	selected := make([]*Language, 0, len(d.opts.Languages))
	for _, name := range d.opts.Languages {
		lang, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("template dir %s has no language pack named %q", d.opts.TemplateDir, name)
		}
		selected = append(selected, lang)
	}
	return selected, nil
}

// generateLanguage renders every codec through one language pack and splices
// the output into the pack's file templates.
func (d *Driver) generateLanguage(lang *Language, encoder *codec.Encoder) ([]string, error) {
	formatter := format.New(lang.FormatTemplates(), format.WithEscape(lang.EscapeFunc()))

	var fragments []string
	for _, c := range encoder.Codecs() {
		fragment, err := renderCodec(formatter, lang, c)
		if err != nil {
			return nil, fmt.Errorf("rendering codec %q: %w", c.Target(), err)
		}
		fragments = append(fragments, fragment)
	}
	generated := strings.Join(fragments, "\n")

	var written []string
	for _, ft := range lang.Files {
		template, err := os.ReadFile(lang.TemplatePath(ft))
		if err != nil {
			return nil, fmt.Errorf("reading file template: %w", err)
		}
		spliced, err := Splice(template, generated)
		if err != nil {
			return nil, fmt.Errorf("splicing %s: %w", ft.Template, err)
		}

		outPath := filepath.Join(d.opts.OutputDir, lang.Name, ft.Output)
		written = append(written, outPath)
		if d.opts.DryRun {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(outPath, spliced, 0o644); err != nil {
			return nil, err
		}
	}
	return written, nil
}

// renderCodec renders one codec's rule chain and user-defined emitters and
// wraps them in the pack's codec template.
func renderCodec(formatter *format.Formatter, lang *Language, c *codec.Codec) (string, error) {
	chain, err := formatter.Render(c.Root())
	if err != nil {
		return "", err
	}

	var emitters strings.Builder
	if lang.Emitter != "" {
		for _, name := range c.Emitters() {
			tree := c.UserEmitter(name)
			if tree == nil {
				continue // builtin, defined by the file template itself
			}
			body, err := formatter.Render(tree)
			if err != nil {
				return "", err
			}
			emitters.WriteString(format.Expand(lang.Emitter, map[string]string{
				"name": name,
				"body": body,
			}))
		}
	}

	return format.Expand(lang.Codec, map[string]string{
		"target":   c.Target(),
		"chain":    chain,
		"emitters": emitters.String(),
	}), nil
}
