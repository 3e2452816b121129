package render

import (
	"github.com/bft-labs/mandelbrot/internal/adapters/png"
	"github.com/bft-labs/mandelbrot/internal/ports"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

// Option configures optional behavior of a Pipeline.
type Option func(*options)

// options holds the optional configuration for a Pipeline.
type options struct {
	workers int
	logger  log.Logger
	encoder ports.ImageEncoder
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
		logger:  log.NewNoopLogger(),
		encoder: png.NewEncoder(),
	}
}

// WithWorkers sets the number of parallel bands a render is split into.
// If not provided, DefaultWorkers is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEncoder sets the image encoder used by RenderFile.
// If not provided, the PNG encoder is used.
func WithEncoder(encoder ports.ImageEncoder) Option {
	return func(o *options) {
		o.encoder = encoder
	}
}
