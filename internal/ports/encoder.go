package ports

import (
	"io"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// ImageEncoder persists a completed pixel buffer as an encoded raster image.
// Implementations receive the buffer only after the render has fully
// joined; they never observe a partial render.
type ImageEncoder interface {
	// Encode writes the RGB pixel buffer, whose dimensions are given by g,
	// to w. The buffer must be exactly g.Bytes() long: one 8-bit RGB triple
	// per pixel, row-major, top to bottom.
	Encode(w io.Writer, pix []byte, g domain.Grid) error
}
