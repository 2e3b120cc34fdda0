package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reports reloaded configurations when the file at a path changes.
// The parent directory is watched so editors that save by rename are seen.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{path: path, fs: fw}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Next blocks until the watched file is written, created or renamed into
// place, and returns the result of loading it. A removed file reloads as
// Default.
func (w *Watcher) Next(ctx context.Context) (Config, error) {
	for {
		select {
		case <-ctx.Done():
			return Config{}, ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				return Load(w.path)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			return Config{}, fmt.Errorf("watching %s: %w", w.path, err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
