package diagram

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/diagrams/pkg/geom"
)

// Shape tags how a primitive is filled.
type Shape int

const (
	ShapeEllipse Shape = iota
	ShapeRectangle
)

func (s Shape) String() string {
	switch s {
	case ShapeEllipse:
		return "ellipse"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Diagram is an immutable drawing description. The set of implementations
// is closed: [Primitive], [Below] and [Annotated].
type Diagram interface {
	isDiagram()
}

// Primitive is a leaf shape with an intrinsic virtual size.
type Primitive struct {
	Size  geom.Size
	Shape Shape
}

// Below stacks Top directly above Bottom.
type Below struct {
	Top    Diagram
	Bottom Diagram
}

// Annotated applies Attribute to every node of Diagram.
type Annotated struct {
	Attribute Attribute
	Diagram   Diagram
}

func (Primitive) isDiagram() {}
func (Below) isDiagram()     {}
func (Annotated) isDiagram() {}

// Attribute is a rendering-time property scoped over a subtree. The set of
// implementations is closed: [FillColor] and [Alignment].
type Attribute interface {
	isAttribute()
}

// FillColor sets the color used by every fill in the annotated subtree.
type FillColor struct {
	Color color.Color
}

// Alignment anchors the annotated subtree inside its bounds. Each component
// is a fraction: 0 is the left/bottom edge, 1 the right/top edge. Values
// outside [0,1] are allowed and push the subtree past the edge.
type Alignment struct {
	Align geom.Point
}

func (FillColor) isAttribute() {}
func (Alignment) isAttribute() {}

// unknown panics for a variant added without updating its consumers.
func unknown(kind string, v any) {
	panic(fmt.Sprintf("diagram: unknown %s %T", kind, v))
}
