// Package domain holds the core types of the renderer: the plane window,
// the pixel grid, and the band partition of the output buffer.
//
// Everything in this package is pure arithmetic over immutable values.
// Nothing here performs I/O, allocates shared state, or synchronizes, so
// every function is safe for unrestricted concurrent use.
package domain
