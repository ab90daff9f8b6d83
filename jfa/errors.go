package jfa

import (
	"errors"

	"github.com/katalvlaran/jumpflood/grid"
)

// Sentinel errors for driver construction and execution.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = grid.ErrInvalidDimensions
	// ErrLengthMismatch indicates the input slice is not width*height long.
	ErrLengthMismatch = grid.ErrLengthMismatch
	// ErrNilPredicate is returned when Execute or Run receives a nil predicate.
	ErrNilPredicate = errors.New("jfa: classification predicate is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jfa: invalid option supplied")
)
