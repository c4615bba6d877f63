package diagram

import (
	"image/color"
	"math"

	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/diagrams/pkg/errors"
)

// ParseColor parses a CSS color: a named color ("tomato"), hex ("#f80",
// "#ff8800cc"), or a functional form ("rgb(255 0 0 / 50%)", "hsl(...)").
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}, nil
}

// MustParseColor is like ParseColor but panics if s cannot be parsed.
// It simplifies color literals in package-level diagrams.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
