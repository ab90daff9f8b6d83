package jfa

import (
	"math"

	"github.com/katalvlaran/jumpflood/grid"
)

// JFA — Jump Flooding Algorithm
//
// Algorithm Outline:
//  1. Reset both record buffers to "absent".
//  2. For level = top..0 (top = ⌈log2(max(W,H))⌉), step = 2^level:
//     For every cell (x,y) in raster order, best = +∞:
//     For dx = -1..1, dy = -1..1 (the zero offset included):
//     s = (x+dx·step, y+dy·step)
//     if inside(v[x,y]) != inside(v[s]):   candidate = s
//     else if record[s] (previous level) present: candidate = record[s]
//     else: skip
//     if |candidate-(x,y)|² < best: best = …, write record[x,y] = candidate
//     Swap the record buffers.
//  3. Resolve every cell: inside → own value, outside → v[record],
//     absent → Options.Unresolved.
//
// Complexity:
//
//	Time   = O(W·H·(top+1)·9)
//	Memory = O(W·H)

// offsets is the 3×3 neighborhood in tie-break order: dx outer, dy inner.
var offsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Driver owns a read-only copy of the input grid and a double-buffered
// grid of Nearest records. A Driver is not safe for concurrent use.
type Driver[T any] struct {
	values  *grid.Grid[T]
	nearest *grid.SwapGrid[Nearest]
	opts    Options
}

// New builds a Driver over width×height row-major values. sentinel is
// returned (and classified) for every read outside the grid.
// The values slice is copied.
//
// Returns ErrInvalidDimensions, ErrLengthMismatch or ErrOptionViolation.
func New[T any](width, height int, values []T, sentinel T, opts ...Option) (*Driver[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	in, err := grid.FromSlice(width, height, values, sentinel)
	if err != nil {
		return nil, err
	}
	// Off-grid record reads yield the zero Nearest, i.e. "absent".
	recs, err := grid.NewSwap(width, height, Nearest{})
	if err != nil {
		return nil, err
	}

	return &Driver[T]{values: in, nearest: recs, opts: o}, nil
}

// Width returns the grid width.
func (d *Driver[T]) Width() int { return d.values.Width() }

// Height returns the grid height.
func (d *Driver[T]) Height() int { return d.values.Height() }

// Execute runs the algorithm and returns the row-major output values.
// Returns ErrNilPredicate if inside is nil.
func (d *Driver[T]) Execute(inside Predicate[T]) ([]T, error) {
	res, err := d.Run(inside)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}

// Run executes every level and the resolution pass, returning the output
// together with the final records. Repeated runs on one Driver give
// identical results.
// Returns ErrNilPredicate if inside is nil.
func (d *Driver[T]) Run(inside Predicate[T]) (*Result[T], error) {
	if inside == nil {
		return nil, ErrNilPredicate
	}
	log := d.opts.Logger
	w, h := d.values.Width(), d.values.Height()

	d.nearest.Reset(Nearest{})
	top := d.topLevel()
	for level := top; level >= 0; level-- {
		step := Step(level)
		updates := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if d.searchLevel(x, y, step, inside) {
					updates++
				}
			}
		}
		d.nearest.Swap()

		log.Debug("jfa: level committed", "level", level, "step", step, "updates", updates)
		d.opts.OnLevel(level, step, updates)
	}

	res := d.resolve(inside)
	res.Levels = top + 1
	log.Debug("jfa: run complete",
		"width", w, "height", h,
		"levels", res.Levels, "unresolved", res.Unresolved)

	return res, nil
}

// topLevel returns the first level, honoring Options.MaxLevel.
func (d *Driver[T]) topLevel() int {
	top := MaxLevel(d.values.Width(), d.values.Height())
	if d.opts.MaxLevel != autoLevel && d.opts.MaxLevel < top {
		top = d.opts.MaxLevel
	}

	return top
}

// searchLevel scans the 3×3 neighborhood of (x,y) at the given step and
// commits the closest candidate to the active record buffer.
// Reports whether any candidate was committed.
func (d *Driver[T]) searchLevel(x, y, step int, inside Predicate[T]) bool {
	here := Point{X: x, Y: y}
	current := inside(d.values.At(x, y))
	best := math.MaxInt
	found := false

	for _, off := range offsets {
		sx, sy := x+off[0]*step, y+off[1]*step

		var candidate Point
		switch rec := d.nearest.At(sx, sy); {
		case inside(d.values.At(sx, sy)) != current:
			candidate = Point{X: sx, Y: sy}
		case rec.Found:
			candidate = rec.Point
		default:
			continue
		}

		// strict "<": the first candidate at a given distance wins
		if dist := SquaredDistance(here, candidate); dist < best {
			best = dist
			d.nearest.Set(x, y, Nearest{Point: candidate, Found: true})
			found = true
		}
	}

	return found
}

// resolve builds the output from the committed records.
func (d *Driver[T]) resolve(inside Predicate[T]) *Result[T] {
	w, h := d.values.Width(), d.values.Height()
	res := &Result[T]{
		Width:   w,
		Height:  h,
		Values:  make([]T, w*h),
		Nearest: make([]Nearest, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := d.values.At(x, y)
			rec := d.nearest.At(x, y)
			res.Nearest[i] = rec

			switch {
			case !rec.Found:
				res.Unresolved++
				if d.opts.Unresolved == KeepInput {
					res.Values[i] = v
				}
			case inside(v):
				res.Values[i] = v
			default:
				res.Values[i] = d.values.At(rec.X, rec.Y)
			}
		}
	}

	return res
}
