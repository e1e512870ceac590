package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Config when its file changes on disk, so capability
// flags can change at runtime; the next zoom operation sees the new
// values.
type Watcher struct {
	config   *Config
	path     string
	fs       *fsnotify.Watcher
	onReload func(error)
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithReloadCallback is invoked after each reload attempt with its error,
// nil on success.
func WithReloadCallback(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watch starts watching the config file's directory. Watching the
// directory rather than the file survives editors that replace the file
// on save.
func Watch(config *Config, path string, opts ...WatchOption) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		config: config,
		path:   path,
		fs:     fs,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes file events until the context is cancelled.
// It is intended to run on its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			err := w.config.Reload(w.path)
			if w.onReload != nil {
				w.onReload(err)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
