package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the watcher waits after the last file event
// before regenerating, so editor save storms trigger one run.
const watchDebounce = 300 * time.Millisecond

// Watch regenerates on every change to the codec or template directories
// until the context is cancelled. Failures of individual runs are logged,
// not fatal; the watcher keeps running.
func (d *Driver) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{d.opts.CodecDir, d.opts.TemplateDir} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	// Language packs live one level down from the template dir.
	packs, err := filepath.Glob(filepath.Join(d.opts.TemplateDir, "*"))
	if err == nil {
		for _, p := range packs {
			_ = watcher.Add(p)
		}
	}

	d.logger.Info("watching for changes",
		"codec_dir", d.opts.CodecDir,
		"template_dir", d.opts.TemplateDir,
	)

	var timer *time.Timer
	trigger := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			d.logger.Warn("watch error", "error", err)

		case <-trigger:
			report, err := d.Run(ctx)
			if err != nil {
				d.logger.Error("regeneration failed", "error", err)
				continue
			}
			d.logger.Info("regenerated",
				"run_id", report.RunID,
				"targets", report.Targets,
				"files", len(report.Files),
				"duration", report.Duration,
			)
		}
	}
}
