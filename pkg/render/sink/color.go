package sink

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// defaultFill is the fill color of a fresh canvas.
var defaultFill = color.NRGBA{A: 0xff}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return defaultFill
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// hex returns the "#rrggbb" form of c, ignoring alpha.
func hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// opacity returns the alpha of c as a fraction.
func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}
