package jfa

import (
	"fmt"
	"log/slog"
)

// Point is an integer cell coordinate. It may lie outside the grid when
// the nearest boundary is the out-of-range sentinel.
type Point struct {
	X, Y int
}

// Nearest is the per-cell record of the closest known cell of the other
// classification. The zero value means "no candidate yet"; a record
// pointing at (0,0) always has Found set.
type Nearest struct {
	Point
	Found bool
}

// Predicate classifies a value as inside (true) or outside (false).
// It must be pure: the driver calls it many times per cell.
type Predicate[T any] func(T) bool

// UnresolvedPolicy decides the output of a cell whose record stayed empty,
// which only happens when no boundary exists anywhere in reach.
type UnresolvedPolicy int

const (
	// KeepInput copies the input value through unchanged.
	KeepInput UnresolvedPolicy = iota
	// ZeroValue writes T's zero value.
	ZeroValue
)

// String implements fmt.Stringer.
func (p UnresolvedPolicy) String() string {
	switch p {
	case KeepInput:
		return "keep-input"
	case ZeroValue:
		return "zero-value"
	default:
		return fmt.Sprintf("UnresolvedPolicy(%d)", int(p))
	}
}

// autoLevel lets the driver derive the starting level from the grid size.
const autoLevel = -1

// Option configures a Driver via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds driver parameters and callbacks.
type Options struct {
	// Logger receives debug records per level and per run.
	Logger *slog.Logger

	// OnLevel is called after each level has been committed (after Swap)
	// with the level, its step and the number of cells that wrote a record.
	OnLevel func(level, step, updates int)

	// Unresolved selects the output for cells that never found a candidate.
	Unresolved UnresolvedPolicy

	// MaxLevel caps the first level. autoLevel (-1) uses MaxLevel(W,H).
	MaxLevel int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a silent logger
//   - a no-op OnLevel hook
//   - Unresolved = KeepInput
//   - MaxLevel derived from the grid size.
func DefaultOptions() Options {
	return Options{
		Logger:     newNopLogger(),
		OnLevel:    func(int, int, int) {},
		Unresolved: KeepInput,
		MaxLevel:   autoLevel,
	}
}

// WithLogger routes debug records to l. A nil logger keeps logging off.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLevel registers a callback run after every committed level.
func WithOnLevel(fn func(level, step, updates int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithUnresolved selects how cells without a record are written.
// Unknown policies are rejected with ErrOptionViolation.
func WithUnresolved(p UnresolvedPolicy) Option {
	return func(o *Options) {
		switch p {
		case KeepInput, ZeroValue:
			o.Unresolved = p
		default:
			o.err = fmt.Errorf("%w: unknown unresolved policy %v", ErrOptionViolation, p)
		}
	}
}

// WithMaxLevel caps the first level at n (step 2^n).
//
//	n >= 0: start at min(n, MaxLevel(W,H))
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxLevel(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLevel cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxLevel = n
	}
}

// Result holds the outcome of a run:
//   - Values: row-major output, Width*Height long.
//   - Nearest: row-major final records, as read after the last Swap.
//   - Levels: number of levels executed.
//   - Unresolved: number of cells whose record stayed empty.
type Result[T any] struct {
	Width, Height int
	Values        []T
	Nearest       []Nearest
	Levels        int
	Unresolved    int
}

// At returns the output value at (x,y). (x,y) must lie inside the grid.
func (r *Result[T]) At(x, y int) T {
	return r.Values[y*r.Width+x]
}

// NearestAt returns the final record at (x,y). (x,y) must lie inside the grid.
func (r *Result[T]) NearestAt(x, y int) Nearest {
	return r.Nearest[y*r.Width+x]
}
