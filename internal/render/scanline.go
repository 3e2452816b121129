package render

import (
	"fmt"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// Fill renders every pixel of a rectangular region into pix, one RGB triple
// per pixel in row-major order. The region's size is given by g and it maps
// onto window. pix must be exactly g.Bytes() long and exclusively owned by
// the caller for the duration of the call; Fill writes every byte of it
// exactly once and reads nothing else.
func Fill(pix []byte, g domain.Grid, window domain.Window, limit int) error {
	if len(pix) != g.Bytes() {
		return fmt.Errorf("%w: have %d bytes, want %d for %dx%d",
			domain.ErrBufferSize, len(pix), g.Bytes(), g.Width, g.Height)
	}

	for row := 0; row < g.Height; row++ {
		for column := 0; column < g.Width; column++ {
			point := domain.PixelToPoint(g, column, row, window)
			r, gr, b := shade(point, column, g.Width, limit)

			i := row*g.Stride() + column*3
			pix[i+0] = r
			pix[i+1] = gr
			pix[i+2] = b
		}
	}
	return nil
}

// shade maps one plane point to its color. Points that never escape are
// black. For escaping points the red channel encodes escape speed with an
// inverted ramp (higher iteration count gives a lower value) and green/blue
// form a fixed left-to-right gradient independent of escape time. The
// inverted red ramp is the fixed output contract.
func shade(point complex128, column, width, limit int) (r, g, b byte) {
	count, escaped := EscapeTime(point, limit)
	if !escaped {
		return 0, 0, 0
	}
	grad := byte(column * 255 / width)
	return 255 - byte(count), grad, 255 - grad
}
