package diagram

import (
	"math"

	"github.com/matzehuels/diagrams/pkg/geom"
)

// SizeOf returns the virtual size of d.
func SizeOf(d Diagram) geom.Size {
	switch d := d.(type) {
	case Primitive:
		return d.Size
	case Below:
		top, bottom := SizeOf(d.Top), SizeOf(d.Bottom)
		return geom.Size{
			W: math.Max(top.W, bottom.W),
			H: top.H + bottom.H,
		}
	case Annotated:
		return SizeOf(d.Diagram)
	default:
		unknown("diagram", d)
		return geom.Size{}
	}
}

// Leaves returns the number of primitives reachable from d. A subtree shared
// by several parents is counted once per path.
func Leaves(d Diagram) int {
	switch d := d.(type) {
	case Primitive:
		return 1
	case Below:
		return Leaves(d.Top) + Leaves(d.Bottom)
	case Annotated:
		return Leaves(d.Diagram)
	default:
		unknown("diagram", d)
		return 0
	}
}

// Depth returns the height of the tree rooted at d; a lone primitive has
// depth 1.
func Depth(d Diagram) int {
	switch d := d.(type) {
	case Primitive:
		return 1
	case Below:
		return 1 + max(Depth(d.Top), Depth(d.Bottom))
	case Annotated:
		return 1 + Depth(d.Diagram)
	default:
		unknown("diagram", d)
		return 0
	}
}
