package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long the watcher waits for further changes before
// triggering a rebuild.
const defaultDebounce = 500 * time.Millisecond

// Watcher watches the standards tree and triggers rebuilds on change.
// Rapid bursts of file events (editor saves, git checkouts) collapse into a
// single rebuild via debouncing.
type Watcher struct {
	standardsDir string
	debounce     time.Duration
	rebuild      func(context.Context) error
	logger       *slog.Logger
}

// NewWatcher creates a watcher that invokes rebuild after term sources
// change. A zero debounce uses the default.
func NewWatcher(standardsDir string, debounce time.Duration, rebuild func(context.Context) error, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		standardsDir: standardsDir,
		debounce:     debounce,
		rebuild:      rebuild,
		logger:       logger,
	}
}

// Run watches until the context is cancelled. The standards root and every
// lifecycle folder under it are watched; only YAML file events schedule a
// rebuild. A failed rebuild is logged and watching continues, so a syntax
// error in one save doesn't kill the session.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.standardsDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.standardsDir, err)
	}
	entries, err := os.ReadDir(w.standardsDir)
	if err != nil {
		return fmt.Errorf("read standards directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(w.standardsDir, entry.Name())
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.logger.Info("Watching for term changes",
		slog.String("standards_dir", w.standardsDir),
		slog.Duration("debounce", w.debounce))

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// A lifecycle folder created after startup; watch it
					// so its files trigger rebuilds too.
					if err := fw.Add(event.Name); err != nil {
						w.logger.Warn("Failed to watch new directory",
							slog.String("path", event.Name),
							slog.String("error", err.Error()))
					}
					continue
				}
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Source changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timerC
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", slog.String("error", err.Error()))

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.rebuild(ctx); err != nil {
				w.logger.Error("Rebuild failed", slog.String("error", err.Error()))
			}
		}
	}
}

// relevant filters watch events down to YAML term source changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(event.Name, ".yaml") || strings.HasSuffix(event.Name, ".yml")
}
