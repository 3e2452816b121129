// Package mandelbrot renders raster images of the Mandelbrot set over an
// arbitrary rectangular window of the complex plane, splitting the work
// across parallel workers.
//
// Example usage:
//
//	job := mandelbrot.Job{
//	    Grid:   mandelbrot.Grid{Width: 1000, Height: 750},
//	    Window: mandelbrot.Window{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1, 0.20)},
//	}
//	pix, err := mandelbrot.Render(context.Background(), job)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// pix holds width*height RGB triples, row-major, top to bottom.
package mandelbrot

import (
	"context"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/internal/ports"
	"github.com/bft-labs/mandelbrot/internal/render"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

// Window is a rectangle in the complex plane given by its upper-left and
// lower-right corners.
type Window = domain.Window

// Grid is the output raster size in pixels.
type Grid = domain.Grid

// Band is one horizontal slice of the output raster assigned to one worker.
type Band = domain.Band

// Job describes one render: grid, window, and iteration limit.
type Job = render.Job

// Pipeline renders Jobs into pixel buffers with a fork-join worker set.
// Use New() to create one.
type Pipeline = render.Pipeline

// Option configures optional behavior of a Pipeline.
type Option = render.Option

// ImageEncoder persists completed pixel buffers; see WithEncoder.
type ImageEncoder = ports.ImageEncoder

// Defaults used when a Pipeline or Job leaves them unset.
const (
	DefaultWorkers = render.DefaultWorkers
	DefaultLimit   = render.DefaultLimit
)

// New creates a render pipeline with the given options.
func New(opts ...Option) *Pipeline {
	return render.New(opts...)
}

// Render computes the job into a freshly allocated pixel buffer using a
// pipeline with default options. It returns only after every worker has
// finished; no partial buffer is ever observable.
func Render(ctx context.Context, job Job) ([]byte, error) {
	return render.New().Render(ctx, job)
}

// WithWorkers sets the number of parallel bands a render is split into.
func WithWorkers(n int) Option {
	return render.WithWorkers(n)
}

// WithLogger sets a structured logger for the pipeline.
func WithLogger(logger log.Logger) Option {
	return render.WithLogger(logger)
}

// WithEncoder sets the image encoder used by Pipeline.RenderFile.
func WithEncoder(encoder ImageEncoder) Option {
	return render.WithEncoder(encoder)
}

// PixelToPoint maps a pixel position to its point on the plane by linear
// interpolation of the window across the grid.
func PixelToPoint(g Grid, column, row int, w Window) complex128 {
	return domain.PixelToPoint(g, column, row, w)
}

// EscapeTime returns the iteration at which c's orbit under z ← z² + c
// leaves the disk of radius 2, and whether it did so within limit steps.
func EscapeTime(c complex128, limit int) (int, bool) {
	return render.EscapeTime(c, limit)
}
