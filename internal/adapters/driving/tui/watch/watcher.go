// Package watch observes the simulator database file for outside writes.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

// Watcher emits a signal when the watched database file is written to.
// Bursts of filesystem events (SQLite touches the main file and its WAL
// sidecars in quick succession) collapse into a single signal.
type Watcher struct {
	fsw     *fsnotify.Watcher
	base    string
	changes chan struct{}
	limiter *rate.Limiter
}

// New starts watching the directory containing path for changes to the
// file itself or its SQLite sidecars.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory: editors and SQLite may replace the file
	// rather than write it in place.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:     fsw,
		base:    filepath.Base(path),
		changes: make(chan struct{}, 1),
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	go w.loop()
	return w, nil
}

// Changes returns the signal channel. It is closed when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher error", "error", err)
		}
	}
}

// relevant reports whether the event touches the database file or one of
// its sidecars with a write-like operation. Chmod-only events are noise.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return name == w.base || strings.HasPrefix(name, w.base+"-")
}
