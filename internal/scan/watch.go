package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs a scan of root, then rescans whenever a matching file under
// root is created, written, removed, or renamed. Bursts of events closer
// together than debounce trigger a single rescan. Rescans never overlap.
//
// onReport receives the result of every run, including failed ones. Watch
// blocks until ctx is cancelled and then returns nil.
func (s *Scanner) Watch(ctx context.Context, root string, debounce time.Duration, onReport func(*Report, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := s.addTree(w, root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	rescan := make(chan struct{}, 1)
	d := NewDebouncer(debounce)
	defer d.Stop()

	s.logger.Info("watching for changes", "root", root, "debounce", debounce)
	onReport(s.Run(ctx, root))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("watch stopped")
			return nil

		case <-rescan:
			r, err := s.Run(ctx, root)
			if ctx.Err() != nil {
				return nil
			}
			onReport(r, err)

		case ev, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := s.addTree(w, ev.Name); err != nil {
						s.logger.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
					continue
				}
			}
			if !s.relevant(ev) {
				continue
			}
			s.logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			d.Trigger(func() {
				select {
				case rescan <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("file watcher error", "error", err)
		}
	}
}

// addTree watches dir and every non-hidden directory below it.
func (s *Scanner) addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// relevant reports whether ev can change a scan result.
func (s *Scanner) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	return s.matchesExtension(ev.Name)
}

// Debouncer collects rapid events and runs only the last callback after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	gen      uint64 // incremented by every Trigger; stale timers compare against it
	stopped  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback to run after the interval, replacing any
// pending callback and restarting the timer.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.gen++
	gen := d.gen
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// fire runs the pending callback if no Trigger has happened since the timer
// for gen was started. A timer whose Stop came too late finds a newer
// generation and does nothing.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	cb := d.callback
	d.callback = nil
	d.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
