package domain

// Band is one horizontal slice of the output raster, assigned to a single
// worker for the duration of one fill. Top and Rows locate it in the full
// grid; Window is the band's own sub-rectangle of the plane, derived against
// the full grid so per-band scale matches the whole image.
//
// A band has no lifecycle of its own: it is produced by Partition, consumed
// by one worker, and discarded after the join.
type Band struct {
	Top    int
	Rows   int
	Window Window
}

// Offset returns the band's starting byte index in the full pixel buffer.
func (b Band) Offset(g Grid) int { return b.Top * g.Stride() }

// Length returns the band's byte length in the full pixel buffer.
func (b Band) Length(g Grid) int { return b.Rows * g.Stride() }

// Partition splits the grid into at most workers horizontal bands of
// g.Height/workers + 1 rows each. The extra row absorbs the rounding so a
// fixed band height always covers the grid; the final band is shorter and
// bands that would start past the last row are not emitted.
//
// The returned bands tile [0, g.Height) exactly once: consecutive, no
// overlap, no gap. That disjointness is what lets workers write one shared
// buffer without synchronization.
func Partition(g Grid, w Window, workers int) []Band {
	rowsPerBand := g.Height/workers + 1

	bands := make([]Band, 0, workers)
	for top := 0; top < g.Height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > g.Height {
			rows = g.Height - top
		}
		bands = append(bands, Band{
			Top:  top,
			Rows: rows,
			Window: Window{
				UpperLeft:  PixelToPoint(g, 0, top, w),
				LowerRight: PixelToPoint(g, g.Width, top+rows, w),
			},
		})
	}
	return bands
}
