// Package sink provides concrete [render.Canvas] implementations.
//
// # Overview
//
// A "sink" is where a rendered diagram ends up. This package provides:
//
//   - [Recorder]: keeps every canvas call in memory, tracks the state stack
//     and exports the command log as JSON
//   - [SVGCanvas]: writes <rect> and <ellipse> elements into an SVG document
//   - [PNGCanvas]: rasterizes with github.com/fogleman/gg and encodes PNG
//
// All canvases take y-up coordinates, as produced by [render.Draw]. The SVG
// and PNG canvases flip to the y-down device space internally.
//
// # Usage
//
//	c := sink.NewPNGCanvas(800, 600, sink.WithPNGBackground(color.White))
//	render.Draw(c, d, geom.R(0, 0, 800, 600))
//	var buf bytes.Buffer
//	err := c.EncodePNG(&buf)
//
// # Adding New Canvases
//
// A new canvas implements the five [render.Canvas] methods. Keep the state
// stack local to the canvas: SaveState must capture at least the fill color,
// and RestoreState on an empty stack must not panic.
//
// [render.Canvas]: github.com/matzehuels/diagrams/pkg/render.Canvas
// [render.Draw]: github.com/matzehuels/diagrams/pkg/render.Draw
package sink
