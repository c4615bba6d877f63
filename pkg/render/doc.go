// Package render lays out a diagram and draws it onto a [Canvas].
//
// # Overview
//
// [Draw] walks a [diagram.Diagram] top-down. At each node it decides the
// rectangle every child gets, using [diagram.SizeOf] together with
// [geom.Fit] and [geom.SplitVertical], and issues fill commands for the
// leaves:
//
//   - Primitive: fit its size into the bounds (centered unless an enclosing
//     alignment says otherwise) and fill an ellipse or rectangle
//   - Below: split the bounds in proportion to the two children's heights,
//     draw the top child first
//   - FillColor: save the canvas state, set the fill color, draw the child
//     in the same bounds, restore
//   - Alignment: fit the child's size into the bounds at the requested
//     alignment and draw the child there
//
// # Canvas
//
// A [Canvas] is the stateful drawing surface. Its state stack must balance
// across every Draw call; Draw restores with defer so the stack is balanced
// even when a canvas method panics. A canvas is driven by one traversal at a
// time; the diagram itself may be drawn into several canvases concurrently.
//
// Concrete canvases live in [sink]: an in-memory recorder, SVG and PNG.
//
//	c := sink.NewSVGCanvas(800, 600)
//	render.Draw(c, d, geom.R(0, 0, 800, 600))
//	svg := c.Bytes()
//
// [sink]: github.com/matzehuels/diagrams/pkg/render/sink
package render
