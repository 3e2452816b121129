// Package png implements the image encoder port with the standard library
// PNG codec.
package png

import (
	"fmt"
	"image"
	stdpng "image/png"
	"io"

	"github.com/bft-labs/mandelbrot/internal/domain"
)

// Encoder encodes RGB pixel buffers as PNG.
type Encoder struct{}

// NewEncoder creates a PNG encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode converts the flat RGB buffer into an NRGBA image (alpha fixed at
// 255) and writes it to w as PNG.
func (e *Encoder) Encode(w io.Writer, pix []byte, g domain.Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if len(pix) != g.Bytes() {
		return fmt.Errorf("%w: have %d bytes, want %d for %dx%d",
			domain.ErrBufferSize, len(pix), g.Bytes(), g.Width, g.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Pixels(); i++ {
		img.Pix[i*4+0] = pix[i*3+0]
		img.Pix[i*4+1] = pix[i*3+1]
		img.Pix[i*4+2] = pix[i*3+2]
		img.Pix[i*4+3] = 0xff
	}

	if err := stdpng.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
