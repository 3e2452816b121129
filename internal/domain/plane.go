package domain

import "fmt"

// Window is a rectangle in the complex plane, given by two opposite corners.
// The real axis increases rightward and the imaginary axis decreases
// downward, so a valid window has LowerRight.re > UpperLeft.re and
// UpperLeft.im > LowerRight.im. A Window is immutable for the duration of a
// render.
type Window struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Validate checks the corner ordering invariant.
func (w Window) Validate() error {
	if real(w.LowerRight) <= real(w.UpperLeft) {
		return fmt.Errorf("%w: lower-right re %g must exceed upper-left re %g",
			ErrInvalidWindow, real(w.LowerRight), real(w.UpperLeft))
	}
	if imag(w.UpperLeft) <= imag(w.LowerRight) {
		return fmt.Errorf("%w: upper-left im %g must exceed lower-right im %g",
			ErrInvalidWindow, imag(w.UpperLeft), imag(w.LowerRight))
	}
	return nil
}

// Grid is the size of the output raster in pixels.
type Grid struct {
	Width  int
	Height int
}

// Validate checks that both dimensions are positive.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// Pixels returns the number of pixels in the grid.
func (g Grid) Pixels() int { return g.Width * g.Height }

// Stride returns the byte length of one pixel row (three bytes per pixel).
func (g Grid) Stride() int { return g.Width * 3 }

// Bytes returns the required pixel buffer length for the grid.
func (g Grid) Bytes() int { return g.Width * g.Height * 3 }

// PixelToPoint maps a pixel position to its point on the plane by linear
// interpolation of the window across the grid. (0,0) maps to w.UpperLeft and
// (g.Width, g.Height) to w.LowerRight.
//
// No bounds are enforced: callers pass column == g.Width or row == g.Height
// to obtain the far corner of a sub-rectangle.
func PixelToPoint(g Grid, column, row int, w Window) complex128 {
	width := real(w.LowerRight) - real(w.UpperLeft)
	height := imag(w.UpperLeft) - imag(w.LowerRight)
	return complex(
		real(w.UpperLeft)+float64(column)*width/float64(g.Width),
		imag(w.UpperLeft)-float64(row)*height/float64(g.Height),
	)
}
