package render

import (
	"image/color"

	"github.com/matzehuels/diagrams/pkg/geom"
)

// Canvas is a 2D drawing surface in y-up coordinates.
type Canvas interface {
	// FillRectangle fills r with the current fill color.
	FillRectangle(r geom.Rect)
	// FillEllipse fills the ellipse inscribed in r with the current fill color.
	FillEllipse(r geom.Rect)
	// SetFillColor changes the current fill color.
	SetFillColor(c color.Color)
	// SaveState pushes the current state (at least the fill color).
	SaveState()
	// RestoreState pops the state pushed by the matching SaveState.
	RestoreState()
}
