// Package jumpflood fills 2D grids with nearest-boundary values using the
// Jump Flooding Algorithm, in pure Go.
//
// 🚀 What is jumpflood?
//
//	A small, generic library that brings together:
//		• grid/  — dense Grid[T] with an out-of-range sentinel, and the
//		           double-buffered SwapGrid[T]
//		• jfa/   — the JFA driver: logarithmic levels, 3×3 neighborhood
//		           search, deterministic tie-breaking, resolution pass
//		• field/ — distance matrices (gonum) and grayscale renders of a run
//
// ✨ Why jumpflood?
//
//   - Any cell type: classification is a plain func(T) bool
//   - No aliasing: each level reads only what the previous level committed
//   - Reproducible: identical inputs always give identical outputs
//
// Quick ASCII example (v != 0 is "inside"):
//
//	0 0 0 0 0        7 7 7 9 9
//	0 7 0 0 0   →    7 7 7 9 9
//	0 0 0 0 9        7 7 7 9 9
//
// The cmd/jfademo program runs the classic 32×32 five-marker demo.
//
//	go get github.com/katalvlaran/jumpflood
package jumpflood
