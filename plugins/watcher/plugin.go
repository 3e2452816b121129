// Package watcher re-renders a scene whenever its scene file changes.
// It backs the CLI's --watch mode: edit the TOML, save, and the output
// image is regenerated.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/mandelbrot/pkg/log"
)

// DefaultDebounce is the delay between the last file event and the
// re-render. Editors fire several events per save; the debounce collapses
// them into one render.
const DefaultDebounce = 100 * time.Millisecond

// RenderFunc re-renders the scene. It is invoked from the Run goroutine,
// once per debounced change of the watched file, never concurrently with
// itself.
type RenderFunc func(ctx context.Context) error

// Watcher monitors one scene file and triggers re-renders on change.
type Watcher struct {
	path     string
	render   RenderFunc
	debounce time.Duration
	logger   log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	trigger chan struct{}
}

// New creates a Watcher for the scene file at path.
func New(path string, render RenderFunc, opts ...Option) *Watcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Watcher{
		path:     path,
		render:   render,
		debounce: o.debounce,
		logger:   o.logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Run blocks until ctx is canceled, re-rendering after every write or
// create of the scene file. The watch is registered on the file's directory
// rather than the file itself, so it survives editors that replace the file
// on save.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("watching scene file", log.String("path", w.path))

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleRender()

		case <-w.trigger:
			w.logger.Info("scene file changed, re-rendering", log.String("path", w.path))
			if err := w.render(ctx); err != nil {
				w.logger.Error("re-render failed", log.Err(err))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", log.Err(err))
		}
	}
}

// scheduleRender (re)arms the debounce timer; the timer fires a trigger only
// after the file has been quiet for the debounce window. The render itself
// runs on the Run goroutine, so renders never overlap; triggers raised while
// a render is in flight coalesce into one pending trigger.
func (w *Watcher) scheduleRender() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
