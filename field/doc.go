// Package field turns a jump-flooding result into reportable distance data.
//
// What:
//
//   - Distances: H×W gonum matrix of Euclidean distances from each cell to
//     its nearest record (+Inf where no record was found).
//   - Normalize: rescales finite distances to [0,1].
//   - Render: grayscale image of a normalized field, upscaled with
//     nearest-neighbor sampling from golang.org/x/image/draw.
//
// Errors:
//
//   - ErrInvalidScale: Render called with scale < 1.
package field
