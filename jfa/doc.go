// Package jfa fills a 2D grid with nearest-boundary values using the
// Jump Flooding Algorithm.
//
// 🚀 What is JFA?
//
//	Jump flooding approximates, for every cell, the closest cell of the
//	opposite classification in O(W·H·log(max(W,H))) instead of an
//	exhaustive O((W·H)²) search. Each level samples the 3×3 neighborhood
//	at a step of 2^level, starting with a step that spans the whole grid
//	and halving down to 1, so long-range candidates travel first and are
//	refined locally last.
//
// ✨ Key features:
//   - generic over the cell type T; classification is an injected Predicate
//   - explicit per-cell Nearest record (Found=false means "no candidate yet")
//   - double-buffered records: a level only reads what the previous level
//     committed, so raster order never influences the result
//   - deterministic tie-breaking: strict "<", first offset in
//     (dx=-1..1, dy=-1..1) order wins
//   - per-level hook and slog-based debug logging
//
// ⚙️ Usage:
//
//	d, err := jfa.New(w, h, values, -1)
//	if err != nil {
//	  // ErrInvalidDimensions, ErrLengthMismatch or ErrOptionViolation
//	}
//	out, err := d.Execute(func(v int) bool { return v > 0 })
//
// Resolution:
//
//   - inside cells keep their own value;
//   - outside cells take the value of the input cell their record points
//     at (the sentinel when that point lies off the grid);
//   - cells that never found a candidate follow Options.Unresolved.
//
// The out-of-range sentinel is classified like any other value, so a
// sentinel that the predicate calls "inside" turns the grid border into a
// boundary.
//
// Performance:
//
//   - Time:   O(W·H·(⌈log2(max(W,H))⌉+1)·9)
//   - Memory: O(W·H) for the input copy plus two record buffers.
//
// JFA is an approximation; rare configurations yield a near-but-not-nearest
// point. That behavior is kept as is.
package jfa
