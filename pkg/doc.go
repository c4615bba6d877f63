// Package pkg provides the core libraries for diagrams.
//
// # Overview
//
// A diagram is an immutable tree that describes what to draw: primitive
// shapes with an intrinsic size, vertical stacking, and annotations that set
// the fill color or the alignment of a subtree. Nothing in the tree says
// where a shape ends up. Sizes are inferred bottom-up, and positions are
// resolved top-down while the tree is drawn into a frame.
//
//	[diagram] package (build the tree, infer sizes)
//	         ↓
//	[render] package (resolve layout, issue canvas calls)
//	         ↓
//	[render/sink] package (SVG, PNG, JSON command trace)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/diagrams/pkg/diagram"
//	    "github.com/matzehuels/diagrams/pkg/geom"
//	    "github.com/matzehuels/diagrams/pkg/render"
//	    "github.com/matzehuels/diagrams/pkg/render/sink"
//	)
//
//	// 1. Describe the picture
//	d := diagram.Stack(
//	    diagram.AlignRight(diagram.Fill(diagram.Circle(10), color.White)),
//	    diagram.Rectangle(60, 20),
//	)
//
//	// 2. Draw it into a 300x200 frame
//	c := sink.NewSVGCanvas(300, 200)
//	render.Draw(c, d, geom.R(0, 0, 300, 200))
//
//	// 3. Write the document
//	os.WriteFile("out.svg", c.Bytes(), 0o644)
//
// # Main Packages
//
// [geom] - Points, sizes and rectangles with component-wise arithmetic, plus
// the two layout primitives: [geom.Fit] (uniform scale and align into bounds)
// and [geom.SplitVertical] (proportional vertical split).
//
// [diagram] - The diagram sum type, its constructors and combinators, size
// inference and CSS color parsing.
//
// [render] - The [render.Canvas] interface and [render.Draw], the traversal
// that turns a diagram and a frame into canvas calls.
//
// [render/sink] - Canvas implementations: an in-memory recorder with a JSON
// trace, an SVG writer and a PNG rasterizer.
//
// [gallery] - Named sample diagrams used by the CLI.
//
// [pipeline] - Output options with defaults and validation, and concurrent
// rendering of one diagram into several formats.
//
// [errors] - Coded errors for the host layer.
//
// [observability] - Hooks for instrumenting the pipeline.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/geom/...     # Specific package
//	go test -run Example ./... # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/diagram
// [geom]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/geom
// [render]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/render/sink
// [gallery]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/gallery
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/diagrams/pkg/observability
package pkg
