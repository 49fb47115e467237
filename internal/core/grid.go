package core

// ByteGrid stores a 2D plane of byte-sized cell values in row-major order.
// Dimensions must be positive; validation is the constructor caller's job.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zero-filled plane with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Get reads the value at (x, y). Coordinates must be in range.
func (g *ByteGrid) Get(x, y int) uint8 { return g.data[y*g.W+x] }

// Set writes the value at (x, y). Coordinates must be in range.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// always inside [0, W) x [0, H), including for negative inputs.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the plane with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyOverlap copies the top-left rectangle shared with src into g. Cells
// outside the overlap keep their current values.
func (g *ByteGrid) CopyOverlap(src *ByteGrid) {
	w := g.W
	if src.W < w {
		w = src.W
	}
	h := g.H
	if src.H < h {
		h = src.H
	}
	for y := 0; y < h; y++ {
		copy(g.data[y*g.W:y*g.W+w], src.data[y*src.W:y*src.W+w])
	}
}
