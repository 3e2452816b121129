package domain

import "errors"

// Domain errors represent error conditions in the renderer.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidWindow is returned when a plane window's corners are not ordered.
	ErrInvalidWindow = errors.New("mandelbrot: invalid plane window")

	// ErrInvalidGrid is returned when a pixel grid has a non-positive dimension.
	ErrInvalidGrid = errors.New("mandelbrot: invalid pixel grid")

	// ErrBufferSize is returned when a pixel buffer's length does not match
	// its grid's width*height*3.
	ErrBufferSize = errors.New("mandelbrot: pixel buffer size mismatch")

	// ErrInvalidLimit is returned when an iteration limit is outside [1, 255].
	ErrInvalidLimit = errors.New("mandelbrot: invalid iteration limit")

	// ErrInvalidWorkers is returned when a worker count is not positive.
	ErrInvalidWorkers = errors.New("mandelbrot: invalid worker count")

	// ErrMalformedPair is returned when a numeric-pair string cannot be parsed.
	ErrMalformedPair = errors.New("mandelbrot: malformed pair")
)
