// Package grid provides dense, fixed-size 2D containers used by the
// jump-flooding driver.
//
// What:
//
//   - Grid[T] stores Width×Height values in row-major order (index y*W+x).
//   - Reads outside [0,W)×[0,H) return a caller-supplied sentinel instead
//     of failing, so neighborhood scans never need their own bounds checks.
//   - SwapGrid[T] pairs two Grids: writes go to the active buffer, reads come
//     from the inactive one, and Swap flips the roles in O(1).
//
// Why:
//
//   - Propagation passes must only observe the state committed by the
//     previous pass. Routing reads and writes to different buffers enforces
//     that by construction, whatever order cells are visited in.
//
// Complexity:
//
//   - New, NewSwap: O(W×H) time and memory.
//   - At, Set, Contains, Index, Swap: O(1).
//   - Load, Fill, Values, Reset: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrLengthMismatch: a bulk load does not supply exactly W×H values.
//
// Set is a precondition-checked hot path: writing outside the grid panics.
package grid
