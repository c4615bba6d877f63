package render

import (
	"fmt"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/geom"
)

// Draw renders d into bounds on c. A nil canvas draws nothing.
func Draw(c Canvas, d diagram.Diagram, bounds geom.Rect) {
	if c == nil {
		return
	}
	draw(c, d, bounds)
}

func draw(c Canvas, d diagram.Diagram, bounds geom.Rect) {
	switch d := d.(type) {
	case diagram.Primitive:
		frame := geom.Fit(d.Size, geom.Center, bounds)
		fillShape(c, d.Shape, frame)
	case diagram.Below:
		top, bottom := geom.SplitVertical(diagram.SizeOf(d.Top), diagram.SizeOf(d.Bottom), bounds)
		draw(c, d.Top, top)
		draw(c, d.Bottom, bottom)
	case diagram.Annotated:
		drawAnnotated(c, d, bounds)
	default:
		panic(fmt.Sprintf("render: unknown diagram %T", d))
	}
}

func drawAnnotated(c Canvas, d diagram.Annotated, bounds geom.Rect) {
	switch attr := d.Attribute.(type) {
	case diagram.FillColor:
		c.SaveState()
		defer c.RestoreState()
		c.SetFillColor(attr.Color)
		draw(c, d.Diagram, bounds)
	case diagram.Alignment:
		inner := geom.Fit(diagram.SizeOf(d.Diagram), attr.Align, bounds)
		draw(c, d.Diagram, inner)
	default:
		panic(fmt.Sprintf("render: unknown attribute %T", attr))
	}
}

func fillShape(c Canvas, s diagram.Shape, frame geom.Rect) {
	switch s {
	case diagram.ShapeEllipse:
		c.FillEllipse(frame)
	case diagram.ShapeRectangle:
		c.FillRectangle(frame)
	default:
		panic(fmt.Sprintf("render: unknown shape %v", s))
	}
}
