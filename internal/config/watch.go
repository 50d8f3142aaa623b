package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
	ready    func()
}

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithReady registers a callback invoked once the watch is in place.
func WithReady(fn func()) WatchOption {
	return func(o *watchOptions) {
		o.ready = fn
	}
}

// Watch reloads the config file at path whenever it changes and passes the
// result to onChange. The parent directory is watched so that editors that
// replace the file on save are seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config, error), opts ...WatchOption) error {
	if path == "" {
		return ErrNoConfigPath
	}
	o := watchOptions{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	if o.ready != nil {
		o.ready()
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = time.After(o.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, err)

		case <-pending:
			pending = nil
			onChange(Load(path))
		}
	}
}
