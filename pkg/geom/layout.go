package geom

import "math"

// Center is the default alignment: centered on both axes.
var Center = Point{X: 0.5, Y: 0.5}

// Fit returns the largest rectangle with the aspect ratio of size that fits
// inside bounds, positioned by align. An align component of 0 puts the box
// flush against the origin edge, 1 against the opposite edge; values outside
// [0,1] place it past the edge.
//
// An axis along which size is zero does not constrain the scale. If size is
// zero on both axes the result is a zero-size rectangle at the aligned point.
func Fit(size Size, align Point, bounds Rect) Rect {
	k := fitScale(size, bounds.Size)
	fitted := size.Scale(k)
	slack := bounds.Size.Sub(fitted)
	return Rect{
		Origin: bounds.Origin.Add(align.MulSize(slack)),
		Size:   fitted,
	}
}

// fitScale is the uniform scale min(bounds/size) over the axes where size is
// non-zero.
func fitScale(size, bounds Size) float64 {
	k := math.Inf(1)
	if size.W != 0 {
		k = math.Min(k, bounds.W/size.W)
	}
	if size.H != 0 {
		k = math.Min(k, bounds.H/size.H)
	}
	if math.IsInf(k, 1) {
		return 0
	}
	return k
}

// SplitVertical partitions bounds into two full-width rectangles stacked on
// top of each other, with heights proportional to top.H and bottom.H. The
// bottom rectangle is anchored at bounds.Origin; the top one sits directly
// above it. The two heights always sum to bounds.Size.H exactly.
//
// When top.H + bottom.H is zero the bounds are split evenly.
func SplitVertical(top, bottom Size, bounds Rect) (Rect, Rect) {
	share := 0.5
	if total := top.H + bottom.H; total != 0 {
		share = top.H / total
	}
	topH := share * bounds.Size.H
	bottomH := bounds.Size.H - topH

	bottomRect := Rect{
		Origin: bounds.Origin,
		Size:   Size{W: bounds.Size.W, H: bottomH},
	}
	topRect := Rect{
		Origin: Point{X: bounds.Origin.X, Y: bounds.Origin.Y + bottomH},
		Size:   Size{W: bounds.Size.W, H: topH},
	}
	return topRect, bottomRect
}
