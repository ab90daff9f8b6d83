package grid

import (
	"fmt"
	"math"
)

// Grid is a dense Width×Height container of T with a sentinel for
// out-of-range reads. The backing slice always holds exactly Width*Height
// values; a Grid is never resized.
type Grid[T any] struct {
	width, height int
	cells         []T
	sentinel      T
}

// New allocates a width×height Grid filled with T's zero value.
// Reads outside the grid return sentinel.
// Returns ErrInvalidDimensions if width<=0, height<=0, or width*height
// does not fit in an int.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, sentinel T) (*Grid[T], error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}

	return &Grid[T]{
		width:    width,
		height:   height,
		cells:    make([]T, width*height),
		sentinel: sentinel,
	}, nil
}

// FromSlice builds a Grid from row-major values. The slice is copied.
// Returns ErrInvalidDimensions or ErrLengthMismatch.
func FromSlice[T any](width, height int, values []T, sentinel T) (*Grid[T], error) {
	g, err := New(width, height, sentinel)
	if err != nil {
		return nil, err
	}
	if err = g.Load(values); err != nil {
		return nil, err
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width*Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Sentinel returns the value reported for out-of-range reads.
func (g *Grid[T]) Sentinel() T { return g.sentinel }

// Contains reports whether (x,y) lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index y*Width + x,
// or -1 when (x,y) is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Index(x, y int) int {
	if !g.Contains(x, y) {
		return -1
	}

	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(i int) (x, y int) {
	return i % g.width, i / g.width
}

// At returns the value at (x,y), or the sentinel when (x,y) is out of range.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) T {
	if !g.Contains(x, y) {
		return g.sentinel
	}

	return g.cells[y*g.width+x]
}

// Set stores v at (x,y). Callers must only pass coordinates for which
// Contains reports true; anything else panics.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("grid: Set(%d,%d) outside %d×%d grid", x, y, g.width, g.height))
	}
	g.cells[y*g.width+x] = v
}

// Load replaces the whole store with values (row-major).
// Returns ErrLengthMismatch unless len(values) == Width*Height;
// the grid is left untouched on error.
// Complexity: O(W×H).
func (g *Grid[T]) Load(values []T) error {
	if len(values) != len(g.cells) {
		return fmt.Errorf("%w: got %d values for %d×%d grid", ErrLengthMismatch, len(values), g.width, g.height)
	}
	copy(g.cells, values)

	return nil
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Values returns a row-major copy of the store.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}
