package geom

import "fmt"

// Point is a position, or a pair of per-axis fractions when used as an
// alignment.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size { return Size{W: w, H: h} }

// R builds a rectangle from its origin and size components.
func R(x, y, w, h float64) Rect { return Rect{Origin: Pt(x, y), Size: Sz(w, h)} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(q Point) Point { return Point{p.X * q.X, p.Y * q.Y} }
func (p Point) Div(q Point) Point { return Point{p.X / q.X, p.Y / q.Y} }

// MulSize weights each component of s by the matching component of p.
// With p an alignment fraction this gives the offset of an aligned box.
func (p Point) MulSize(s Size) Point { return Point{p.X * s.W, p.Y * s.H} }

// AddSize offsets p by s.
func (p Point) AddSize(s Size) Point { return Point{p.X + s.W, p.Y + s.H} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

func (s Size) Add(t Size) Size { return Size{s.W + t.W, s.H + t.H} }
func (s Size) Sub(t Size) Size { return Size{s.W - t.W, s.H - t.H} }
func (s Size) Mul(t Size) Size { return Size{s.W * t.W, s.H * t.H} }
func (s Size) Div(t Size) Size { return Size{s.W / t.W, s.H / t.H} }

// Scale multiplies both components by k.
func (s Size) Scale(k float64) Size { return Size{s.W * k, s.H * k} }

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool { return s.W == 0 && s.H == 0 }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.W, s.H) }

// Min returns the bottom-left corner.
func (r Rect) Min() Point { return r.Origin }

// Max returns the top-right corner.
func (r Rect) Max() Point { return r.Origin.AddSize(r.Size) }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return r.Origin.AddSize(r.Size.Scale(0.5)) }

// Contains reports whether o lies within r, allowing eps of slack on each
// edge for floating-point rounding.
func (r Rect) Contains(o Rect, eps float64) bool {
	rmin, rmax := r.Min(), r.Max()
	omin, omax := o.Min(), o.Max()
	return omin.X >= rmin.X-eps && omin.Y >= rmin.Y-eps &&
		omax.X <= rmax.X+eps && omax.Y <= rmax.Y+eps
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.Origin.X, r.Origin.Y, r.Size.W, r.Size.H)
}
