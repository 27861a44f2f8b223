// pkg/watch/watch.go

// Package watch re-runs a build whenever the native source tree changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long changes are batched before a rebuild fires.
// Editors and generators touch several files in quick succession; one
// rebuild per burst is enough.
const DefaultDebounce = 500 * time.Millisecond

// sourceExtensions are the file extensions that trigger a rebuild
var sourceExtensions = []string{
	".c", ".cc", ".cpp", ".h", ".hpp", ".txt", ".cmake", ".py",
}

// Watcher re-runs fn on changes under root
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *log.Logger
}

// New creates a watcher over the given source root
func New(root string, debounce time.Duration, logger *log.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, debounce: debounce, logger: logger}
}

// Run blocks, invoking fn after each batch of relevant changes, until the
// context is canceled. A failing fn is logged and the watch continues.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := addRecursive(fw, w.root); err != nil {
		return err
	}

	pending := &debouncer{d: w.debounce}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			// New directories must be watched too
			if event.Op.Has(fsnotify.Create) {
				if err := addIfDir(fw, event.Name); err != nil && w.logger != nil {
					w.logger.Printf("watch %s: %v", event.Name, err)
				}
			}
			pending.Bump()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Printf("watch error: %v", err)
			}

		case <-pending.C():
			pending.Done()
			if err := fn(ctx); err != nil {
				if w.logger != nil {
					w.logger.Printf("rebuild failed: %v", err)
				}
			}
		}
	}
}

// debouncer batches bumps into a single fire on its channel. Resetting a
// timer that already fired would leave a stale tick queued, so Bump drains
// the channel before rearming; one burst of bumps yields exactly one fire.
type debouncer struct {
	d     time.Duration
	timer *time.Timer
}

// Bump starts or extends the debounce window
func (b *debouncer) Bump() {
	if b.timer == nil {
		b.timer = time.NewTimer(b.d)
		return
	}
	if !b.timer.Stop() {
		<-b.timer.C
	}
	b.timer.Reset(b.d)
}

// C returns the fire channel, or nil while nothing is pending
func (b *debouncer) C() <-chan time.Time {
	if b.timer == nil {
		return nil
	}
	return b.timer.C
}

// Done must be called after consuming a fire, before the next Bump
func (b *debouncer) Done() {
	b.timer = nil
}

// relevant reports whether an event concerns a source file
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	for _, want := range sourceExtensions {
		if ext == want {
			return true
		}
	}
	// Directories carry no extension but may introduce sources
	return ext == ""
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == "build" || name == ".git" || strings.HasPrefix(name, ".") && path != root {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func addIfDir(fw *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	return addRecursive(fw, path)
}
