// Package diagram defines the immutable diagram tree and its size inference.
//
// # Overview
//
// A [Diagram] describes WHAT to draw, independent of any pixel size. It is a
// closed sum type with three variants:
//
//   - [Primitive]: a leaf with an intrinsic (virtual) size and a [Shape]
//   - [Below]: two diagrams stacked vertically
//   - [Annotated]: a subtree wrapped with one [Attribute]
//
// Attributes are [FillColor] and [Alignment]. Nested annotations scope over
// their whole subtree; an inner annotation of the same kind wins for its own
// subtree. Attributes never change a diagram's size.
//
// # Building Diagrams
//
//	snowman := diagram.Stack(
//	    diagram.Circle(10),
//	    diagram.Circle(20),
//	    diagram.Circle(30),
//	)
//	red := diagram.Fill(snowman, color.NRGBA{R: 255, A: 255})
//	right := diagram.AlignRight(red)
//
// # Size Inference
//
// [SizeOf] folds the tree bottom-up: a primitive has its own size, a
// vertical stack is as wide as its widest child and as tall as both children
// together, an annotation is as large as what it wraps.
//
// Values are never mutated after construction, so a diagram (or any
// subtree) may be shared between parents and between goroutines.
package diagram
