package domain

import "testing"

// TestPartitionCoverage checks the tiling invariant: for any grid height and
// worker count, the bands cover [0, height) exactly once in row order.
func TestPartitionCoverage(t *testing.T) {
	window := Window{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

	heights := []int{1, 2, 5, 11, 12, 13, 97, 100, 750}
	workers := []int{1, 3, 5, 12, 17, 100}

	for _, h := range heights {
		for _, n := range workers {
			g := Grid{Width: 10, Height: h}
			bands := Partition(g, window, n)

			if len(bands) == 0 {
				t.Fatalf("Partition(height=%d, workers=%d) produced no bands", h, n)
			}
			if len(bands) > n {
				t.Errorf("Partition(height=%d, workers=%d) produced %d bands, want <= %d", h, n, len(bands), n)
			}

			next := 0
			for i, b := range bands {
				if b.Top != next {
					t.Errorf("height=%d workers=%d: band %d top = %d, want %d", h, n, i, b.Top, next)
				}
				if b.Rows <= 0 {
					t.Errorf("height=%d workers=%d: band %d has %d rows", h, n, i, b.Rows)
				}
				next = b.Top + b.Rows
			}
			if next != h {
				t.Errorf("height=%d workers=%d: bands cover rows [0, %d), want [0, %d)", h, n, next, h)
			}
		}
	}
}

// TestPartitionByteRanges checks that band byte ranges are consecutive and
// sum to the full buffer length.
func TestPartitionByteRanges(t *testing.T) {
	window := Window{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}
	g := Grid{Width: 33, Height: 97}

	offset := 0
	for i, b := range Partition(g, window, 12) {
		if b.Offset(g) != offset {
			t.Errorf("band %d offset = %d, want %d", i, b.Offset(g), offset)
		}
		offset += b.Length(g)
	}
	if offset != g.Bytes() {
		t.Errorf("band lengths sum to %d, want %d", offset, g.Bytes())
	}
}

// TestPartitionBandWindows checks that each band's sub-window is derived by
// mapping its corner pixels against the full grid and window.
func TestPartitionBandWindows(t *testing.T) {
	window := Window{UpperLeft: complex(-2, 1.5), LowerRight: complex(1, -1.5)}
	g := Grid{Width: 64, Height: 48}

	for i, b := range Partition(g, window, 5) {
		wantUL := PixelToPoint(g, 0, b.Top, window)
		wantLR := PixelToPoint(g, g.Width, b.Top+b.Rows, window)
		if b.Window.UpperLeft != wantUL {
			t.Errorf("band %d upper left = %v, want %v", i, b.Window.UpperLeft, wantUL)
		}
		if b.Window.LowerRight != wantLR {
			t.Errorf("band %d lower right = %v, want %v", i, b.Window.LowerRight, wantLR)
		}
	}
}

// TestPartitionSingleWorker checks the degenerate sequential case: one
// worker gets the whole grid and the original window.
func TestPartitionSingleWorker(t *testing.T) {
	window := Window{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}
	g := Grid{Width: 100, Height: 100}

	bands := Partition(g, window, 1)
	if len(bands) != 1 {
		t.Fatalf("Partition(workers=1) produced %d bands, want 1", len(bands))
	}
	b := bands[0]
	if b.Top != 0 || b.Rows != g.Height {
		t.Errorf("band = rows [%d, %d), want [0, %d)", b.Top, b.Top+b.Rows, g.Height)
	}
	if b.Window != window {
		t.Errorf("band window = %+v, want %+v", b.Window, window)
	}
}
