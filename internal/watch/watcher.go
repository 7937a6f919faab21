// Package watch re-runs generation when the settings or overlay file
// changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeFunc is called once per burst of changes with the last changed
// file.
type ChangeFunc func(ctx context.Context, path string)

// Stats counts watcher activity.
type Stats struct {
	Events   int
	Triggers int
	Errors   int
	LastPath string
}

// Watcher watches a fixed set of files. Directories are watched rather
// than the files themselves so that editors replacing a file on save are
// still noticed.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange ChangeFunc
	log      *zap.Logger

	pending   bool
	lastEvent time.Time
	stats     Stats

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New returns a watcher for files. Changes closer together than debounce
// are coalesced into one call of onChange.
func New(files []string, debounce time.Duration, onChange ChangeFunc, log *zap.Logger) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("watch: no files to watch")
	}
	if onChange == nil {
		return nil, fmt.Errorf("watch: nil change func")
	}
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(files)),
		debounce: debounce,
		onChange: onChange,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}
		w.files[abs] = true
	}
	return w, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			w.watcher.Close()
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
		w.log.Debug("watching", zap.String("dir", dir))
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("close watcher", zap.Error(err))
	}
	<-w.doneCh
}

// Stats returns a snapshot of the activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Events++
	w.stats.LastPath = abs
	w.pending = true
	w.lastEvent = time.Now()
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastEvent) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.stats.Triggers++
	path := w.stats.LastPath
	w.mu.Unlock()

	w.log.Debug("change detected", zap.String("path", path))
	w.onChange(ctx, path)
}
