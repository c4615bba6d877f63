package sink

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/diagrams/pkg/geom"
	"github.com/matzehuels/diagrams/pkg/render"
)

var _ render.Canvas = (*PNGCanvas)(nil)

// PNGOption configures a [PNGCanvas].
type PNGOption func(*pngConfig)

type pngConfig struct {
	background color.Color
	scale      float64
}

// WithPNGBackground clears the image to c before drawing. Without it the
// background is transparent.
func WithPNGBackground(c color.Color) PNGOption {
	return func(p *pngConfig) { p.background = c }
}

// WithScale sets the pixel density (default 1; 2 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(p *pngConfig) { p.scale = s }
}

// PNGCanvas rasterizes fills with a gg.Context. The gg state stack backs
// SaveState/RestoreState.
type PNGCanvas struct {
	dc    *gg.Context
	depth int
}

// NewPNGCanvas returns a canvas for a width×height frame. The image is
// width*scale × height*scale pixels.
func NewPNGCanvas(width, height float64, opts ...PNGOption) *PNGCanvas {
	cfg := pngConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale <= 0 {
		cfg.scale = 1
	}

	dc := gg.NewContext(pixels(width*cfg.scale), pixels(height*cfg.scale))
	if cfg.background != nil {
		dc.SetColor(cfg.background)
		dc.Clear()
	}
	dc.InvertY()
	dc.Scale(cfg.scale, cfg.scale)
	dc.SetColor(defaultFill)
	return &PNGCanvas{dc: dc}
}

func pixels(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v + 0.5)
}

func (p *PNGCanvas) FillRectangle(r geom.Rect) {
	r = normalize(r)
	p.dc.DrawRectangle(r.Origin.X, r.Origin.Y, r.Size.W, r.Size.H)
	p.dc.Fill()
}

func (p *PNGCanvas) FillEllipse(r geom.Rect) {
	r = normalize(r)
	c := r.Center()
	p.dc.DrawEllipse(c.X, c.Y, r.Size.W/2, r.Size.H/2)
	p.dc.Fill()
}

func (p *PNGCanvas) SetFillColor(c color.Color) { p.dc.SetColor(toNRGBA(c)) }

func (p *PNGCanvas) SaveState() {
	p.dc.Push()
	p.depth++
}

// RestoreState pops the gg state stack; it is a no-op on an empty stack.
func (p *PNGCanvas) RestoreState() {
	if p.depth == 0 {
		return
	}
	p.dc.Pop()
	p.depth--
}

// Image returns the rendered image.
func (p *PNGCanvas) Image() image.Image { return p.dc.Image() }

// EncodePNG writes the rendered image as PNG.
func (p *PNGCanvas) EncodePNG(w io.Writer) error { return p.dc.EncodePNG(w) }
