package render

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/mandelbrot/internal/domain"
	"github.com/bft-labs/mandelbrot/internal/ports"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

// DefaultWorkers is the band count used when a Pipeline does not set one.
// The partition is bounded by this constant rather than by GOMAXPROCS:
// bands are whole-row slices of the buffer, and a dozen keeps each one
// large enough to amortize goroutine dispatch.
const DefaultWorkers = 12

// fill is indirected so tests can inject worker faults.
var fill = Fill

// Job describes one render: the raster size, the plane window it maps onto,
// and the escape-time iteration bound.
type Job struct {
	Grid   domain.Grid
	Window domain.Window

	// Limit is the escape-time iteration bound. Zero means DefaultLimit.
	// Values above 255 are rejected because the red channel stores the
	// count in one byte.
	Limit int
}

func (j Job) validate() error {
	if err := j.Grid.Validate(); err != nil {
		return err
	}
	if err := j.Window.Validate(); err != nil {
		return err
	}
	if j.Limit < 0 || j.Limit > 255 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidLimit, j.Limit)
	}
	return nil
}

// Pipeline renders Jobs into pixel buffers using a fixed-size fork-join
// worker set. A Pipeline holds no per-render state and is safe for
// concurrent use.
type Pipeline struct {
	workers int
	logger  log.Logger
	encoder ports.ImageEncoder
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		workers: o.workers,
		logger:  o.logger,
		encoder: o.encoder,
	}
}

// Render computes the job into a freshly allocated, zero-initialized pixel
// buffer of job.Grid.Bytes() bytes. The buffer is partitioned into
// horizontal bands, each band is filled on its own worker, and Render
// returns only after every worker has finished. Workers write disjoint
// sub-slices of the one buffer, so the parallel region needs no locking and
// no worker output is observable before the join.
//
// A worker fault (including a panic inside a fill) aborts the whole render;
// there are no retries and no partial results.
func (p *Pipeline) Render(ctx context.Context, job Job) ([]byte, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}
	if p.workers <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWorkers, p.workers)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := job.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	pix := make([]byte, job.Grid.Bytes())
	bands := domain.Partition(job.Grid, job.Window, p.workers)

	start := time.Now()
	p.logger.Debug("render start",
		log.Int("width", job.Grid.Width),
		log.Int("height", job.Grid.Height),
		log.Int("bands", len(bands)),
		log.Int("limit", limit),
	)

	eg, _ := errgroup.WithContext(ctx)
	for _, band := range bands {
		band := band
		sub := pix[band.Offset(job.Grid) : band.Offset(job.Grid)+band.Length(job.Grid)]
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("mandelbrot: band at row %d: %v", band.Top, r)
				}
			}()
			return fill(sub, domain.Grid{Width: job.Grid.Width, Height: band.Rows}, band.Window, limit)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	p.logger.Debug("render done", log.Duration("elapsed", time.Since(start)))
	return pix, nil
}

// RenderFile renders the job and persists the result to path using the
// pipeline's encoder. Encoding happens strictly after the render joins,
// single-threaded. A create or write failure is returned as-is; no partial
// render is ever flushed.
func (p *Pipeline) RenderFile(ctx context.Context, job Job, path string) error {
	pix, err := p.Render(ctx, job)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := p.encoder.Encode(f, pix, job.Grid); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	p.logger.Info("image written",
		log.String("path", path),
		log.Int("width", job.Grid.Width),
		log.Int("height", job.Grid.Height),
	)
	return nil
}
