package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// W is the number of columns and H the number of rows.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid. There is no
// wrapping; anything past an edge is outside.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). The caller must check bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y). The caller must check bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) { copy(g.data, src.data) }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
