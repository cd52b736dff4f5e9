// Package watcher watches theme directories and publishes debounced change
// notifications for theme files.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/pubsub"
)

// Extensions are the theme file extensions that trigger notifications.
var Extensions = []string{".tmTheme", ".xccolortheme", ".bbColorScheme"}

// Config holds watcher configuration options.
type Config struct {
	Dirs        []string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(dirs ...string) Config {
	return Config{
		Dirs:        dirs,
		DebounceDur: 300 * time.Millisecond,
	}
}

// Watcher monitors theme directories. Each changed file is published once
// per quiet period on the broker, with the file path as payload.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dirs      []string
	debounce  time.Duration
	broker    *pubsub.Broker[string]
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// New creates a watcher. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		dirs:      cfg.Dirs,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[string](),
		done:      make(chan struct{}),
	}, nil
}

// Broker exposes the event stream so callers can subscribe before Start.
func (w *Watcher) Broker() *pubsub.Broker[string] {
	return w.broker
}

// Start adds every existing directory and begins the event loop. Missing
// directories are skipped; an error is returned only if none could be watched.
func (w *Watcher) Start() error {
	var errs []error
	watched := 0
	for _, dir := range w.dirs {
		if _, err := os.Stat(dir); err != nil {
			log.Debug(log.CatWatcher, "skipping missing directory", "dir", dir)
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			errs = append(errs, fmt.Errorf("watching directory %s: %w", dir, err))
			continue
		}
		watched++
	}
	if watched == 0 {
		if len(errs) == 0 {
			errs = append(errs, fmt.Errorf("no theme directories to watch"))
		}
		return errors.Join(errs...)
	}
	for _, err := range errs {
		log.ErrorErr(log.CatWatcher, "watch failed", err)
	}

	log.Info(log.CatWatcher, "watching", "dirs", watched)
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop terminates the watcher, closes the broker and releases resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
		w.broker.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]pubsub.EventType)
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			kind, relevant := classify(event)
			if !relevant {
				continue
			}
			pending[event.Name] = merge(pending[event.Name], kind)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.flush(pending)
			clear(pending)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "fsnotify error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) flush(pending map[string]pubsub.EventType) {
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Debug(log.CatWatcher, "theme file event", "path", name, "type", pending[name])
		w.broker.Publish(pending[name], name)
	}
}

// merge keeps the most recent meaning of a burst, except that a file created
// and then written within one burst is still reported as added.
func merge(prev, next pubsub.EventType) pubsub.EventType {
	if prev == pubsub.AddedEvent && next == pubsub.ChangedEvent {
		return prev
	}
	return next
}

// classify maps an fsnotify event on a theme file to an event type.
func classify(event fsnotify.Event) (pubsub.EventType, bool) {
	if !IsThemeFile(event.Name) {
		return "", false
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return pubsub.RemovedEvent, true
	case event.Has(fsnotify.Create):
		return pubsub.AddedEvent, true
	case event.Has(fsnotify.Write):
		return pubsub.ChangedEvent, true
	default:
		return "", false
	}
}

// IsThemeFile reports whether path has one of the watched extensions.
func IsThemeFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
