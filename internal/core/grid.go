package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Negative dimensions are
// treated as zero.
func NewGrid[T any](w, h int) *Grid[T] {
	g := &Grid[T]{}
	g.Reset(w, h)
	return g
}

// Reset resizes the grid to w*h and zeroes every slot, reusing the backing
// array when it is large enough.
func (g *Grid[T]) Reset(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	total := w * h
	if cap(g.data) >= total {
		g.data = g.data[:total]
		g.Clear()
		return
	}
	g.data = make([]T, total)
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid without wrapping.
func (g *Grid[T]) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at the wrapped coordinates.
func (g *Grid[T]) At(x, y int) T {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores v at the wrapped coordinates.
func (g *Grid[T]) Set(x, y int, v T) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zero values.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}

// Empty reports whether the grid has no slots.
func (g *Grid[T]) Empty() bool { return len(g.data) == 0 }
