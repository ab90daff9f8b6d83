package grid

import "errors"

// Sentinel errors for grid construction and bulk loads.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrLengthMismatch indicates a bulk load whose length differs from width*height.
	ErrLengthMismatch = errors.New("grid: value count must equal width*height")
)
