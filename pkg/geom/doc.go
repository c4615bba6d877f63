// Package geom provides the 2D value types and layout primitives used by
// the diagram engine.
//
// # Types
//
// [Point], [Size] and [Rect] are plain float64 value types. All arithmetic is
// component-wise and unguarded: dividing by a zero component yields the
// usual IEEE result (±Inf or NaN). Callers that need finite results must
// avoid degenerate divisors themselves; [Fit] and [SplitVertical] do so.
//
// # Coordinates
//
// The y axis grows upward. A [Rect] is anchored at its bottom-left Origin,
// so an alignment of (0, 0) means "flush bottom-left" and (1, 1) means
// "flush top-right".
//
// # Layout
//
//	frame := geom.Fit(geom.Sz(100, 200), geom.Center, bounds)
//	top, bottom := geom.SplitVertical(topSize, bottomSize, bounds)
package geom
