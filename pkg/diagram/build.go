package diagram

import (
	"image/color"

	"github.com/matzehuels/diagrams/pkg/geom"
)

// Fixed alignments used by the AlignXxx helpers.
var (
	alignRight  = geom.Pt(1, 0.5)
	alignLeft   = geom.Pt(0, 0.5)
	alignTop    = geom.Pt(0.5, 1)
	alignBottom = geom.Pt(0.5, 0)
)

// Square returns a side×side rectangle.
func Square(side float64) Diagram {
	return Primitive{Size: geom.Sz(side, side), Shape: ShapeRectangle}
}

// Rectangle returns a w×h rectangle.
func Rectangle(w, h float64) Diagram {
	return Primitive{Size: geom.Sz(w, h), Shape: ShapeRectangle}
}

// Circle returns a circle of the given radius.
func Circle(radius float64) Diagram {
	return Primitive{Size: geom.Sz(2*radius, 2*radius), Shape: ShapeEllipse}
}

// Ellipse returns an ellipse inscribed in a w×h box.
func Ellipse(w, h float64) Diagram {
	return Primitive{Size: geom.Sz(w, h), Shape: ShapeEllipse}
}

// Over stacks top directly above bottom.
func Over(top, bottom Diagram) Diagram {
	return Below{Top: top, Bottom: bottom}
}

// Stack stacks ds vertically, first on top. A single diagram is returned
// as is; an empty stack is a zero-size rectangle.
func Stack(ds ...Diagram) Diagram {
	if len(ds) == 0 {
		return Rectangle(0, 0)
	}
	d := ds[len(ds)-1]
	for i := len(ds) - 2; i >= 0; i-- {
		d = Over(ds[i], d)
	}
	return d
}

// Fill paints every shape in d with c unless a nested Fill overrides it.
func Fill(d Diagram, c color.Color) Diagram {
	return Annotated{Attribute: FillColor{Color: c}, Diagram: d}
}

// FillNamed is Fill with a CSS color string such as "tomato" or "#ff000080".
func FillNamed(d Diagram, name string) (Diagram, error) {
	c, err := ParseColor(name)
	if err != nil {
		return nil, err
	}
	return Fill(d, c), nil
}

// Align anchors d at the fractional position (x, y) of its bounds.
func Align(d Diagram, x, y float64) Diagram {
	return Annotated{Attribute: Alignment{Align: geom.Pt(x, y)}, Diagram: d}
}

// AlignRight anchors d against the right edge, vertically centered.
func AlignRight(d Diagram) Diagram { return align(d, alignRight) }

// AlignLeft anchors d against the left edge, vertically centered.
func AlignLeft(d Diagram) Diagram { return align(d, alignLeft) }

// AlignTop anchors d against the top edge, horizontally centered.
func AlignTop(d Diagram) Diagram { return align(d, alignTop) }

// AlignBottom anchors d against the bottom edge, horizontally centered.
func AlignBottom(d Diagram) Diagram { return align(d, alignBottom) }

func align(d Diagram, p geom.Point) Diagram {
	return Annotated{Attribute: Alignment{Align: p}, Diagram: d}
}
