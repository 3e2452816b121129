package watcher

import (
	"time"

	"github.com/bft-labs/mandelbrot/pkg/log"
)

// Option configures optional behavior of a Watcher.
type Option func(*options)

type options struct {
	debounce time.Duration
	logger   log.Logger
}

func defaultOptions() options {
	return options{
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
	}
}

// WithDebounce sets the quiet window between the last file event and the
// re-render. If not provided, DefaultDebounce is used.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
