package jfa

import (
	"math"
	"math/bits"
)

// MaxLevel returns ⌈log2(max(width, height))⌉, the first level of a run.
// Grids with a longest side of 1 start (and end) at level 0.
// Non-positive sizes yield 0.
func MaxLevel(width, height int) int {
	n := max(width, height)
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// Step returns the sampling distance 2^level used at a level.
func Step(level int) int {
	return 1 << level
}

// SquaredDistance is the squared Euclidean distance between a and b.
// All comparisons in the algorithm use it.
func SquaredDistance(a, b Point) int {
	dx, dy := b.X-a.X, b.Y-a.Y

	return dx*dx + dy*dy
}

// Distance is the Euclidean distance between a and b, for reporting.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(SquaredDistance(a, b)))
}
