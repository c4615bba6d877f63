package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/matzehuels/diagrams/pkg/geom"
	"github.com/matzehuels/diagrams/pkg/render"
)

var _ render.Canvas = (*SVGCanvas)(nil)

// SVGOption configures an [SVGCanvas].
type SVGOption func(*SVGCanvas)

// WithSVGBackground paints the whole frame with c before any shape.
func WithSVGBackground(c color.Color) SVGOption {
	return func(s *SVGCanvas) {
		bg := toNRGBA(c)
		s.background = &bg
	}
}

// SVGCanvas accumulates fills as SVG elements. The zero value is not usable;
// call NewSVGCanvas.
type SVGCanvas struct {
	width, height float64
	background    *color.NRGBA

	fill  color.NRGBA
	stack []color.NRGBA
	body  bytes.Buffer
}

// NewSVGCanvas returns a canvas for a width×height frame.
func NewSVGCanvas(width, height float64, opts ...SVGOption) *SVGCanvas {
	s := &SVGCanvas{width: width, height: height, fill: defaultFill}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVGCanvas) FillRectangle(r geom.Rect) {
	r = normalize(r)
	y := s.height - r.Origin.Y - r.Size.H
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.Origin.X), num(y), num(r.Size.W), num(r.Size.H), fillAttrs(s.fill))
}

func (s *SVGCanvas) FillEllipse(r geom.Rect) {
	r = normalize(r)
	c := r.Center()
	fmt.Fprintf(&s.body, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`+"\n",
		num(c.X), num(s.height-c.Y), num(r.Size.W/2), num(r.Size.H/2), fillAttrs(s.fill))
}

func (s *SVGCanvas) SetFillColor(c color.Color) { s.fill = toNRGBA(c) }

func (s *SVGCanvas) SaveState() { s.stack = append(s.stack, s.fill) }

func (s *SVGCanvas) RestoreState() {
	if n := len(s.stack); n > 0 {
		s.fill = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

// Bytes returns the complete SVG document drawn so far.
func (s *SVGCanvas) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.background != nil {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%"%s/>`+"\n", fillAttrs(*s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func fillAttrs(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf(` fill="%s"`, hex(c))
	}
	return fmt.Sprintf(` fill="%s" fill-opacity="%.3f"`, hex(c), opacity(c))
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return fmt.Sprintf("%g", v)
}

// normalize flips negative extents so that Size is non-negative.
func normalize(r geom.Rect) geom.Rect {
	if r.Size.W < 0 {
		r.Origin.X += r.Size.W
		r.Size.W = -r.Size.W
	}
	if r.Size.H < 0 {
		r.Origin.Y += r.Size.H
		r.Size.H = -r.Size.H
	}
	return r
}
