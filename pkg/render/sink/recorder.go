package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/diagrams/pkg/geom"
	"github.com/matzehuels/diagrams/pkg/render"
)

var _ render.Canvas = (*Recorder)(nil)

// Op names a recorded canvas call.
type Op string

const (
	OpFillRectangle Op = "fill_rectangle"
	OpFillEllipse   Op = "fill_ellipse"
	OpSetFillColor  Op = "set_fill_color"
	OpSaveState     Op = "save_state"
	OpRestoreState  Op = "restore_state"
)

// Command is one recorded canvas call. For fills, Color is the fill color in
// effect at the time of the call; for OpSetFillColor it is the new color.
// Depth is the state stack depth after the call.
type Command struct {
	Op    Op
	Rect  geom.Rect
	Color color.NRGBA
	Depth int
}

// Recorder is an in-memory canvas. It is useful for tests, for dumping a
// render as JSON and for checking that save/restore calls balance.
type Recorder struct {
	Commands []Command

	fill       color.NRGBA
	stack      []color.NRGBA
	maxDepth   int
	unbalanced int
}

// NewRecorder returns an empty recorder whose fill color is opaque black.
func NewRecorder() *Recorder {
	return &Recorder{fill: defaultFill}
}

func (r *Recorder) FillRectangle(rect geom.Rect) { r.record(OpFillRectangle, rect, r.fill) }
func (r *Recorder) FillEllipse(rect geom.Rect)   { r.record(OpFillEllipse, rect, r.fill) }

func (r *Recorder) SetFillColor(c color.Color) {
	r.fill = toNRGBA(c)
	r.record(OpSetFillColor, geom.Rect{}, r.fill)
}

func (r *Recorder) SaveState() {
	r.stack = append(r.stack, r.fill)
	r.maxDepth = max(r.maxDepth, len(r.stack))
	r.record(OpSaveState, geom.Rect{}, r.fill)
}

// RestoreState pops the saved fill color. A restore without a matching save
// is ignored and counted by Unbalanced.
func (r *Recorder) RestoreState() {
	if n := len(r.stack); n > 0 {
		r.fill = r.stack[n-1]
		r.stack = r.stack[:n-1]
	} else {
		r.unbalanced++
	}
	r.record(OpRestoreState, geom.Rect{}, r.fill)
}

func (r *Recorder) record(op Op, rect geom.Rect, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: op, Rect: rect, Color: c, Depth: len(r.stack)})
}

// Depth returns the current state stack depth.
func (r *Recorder) Depth() int { return len(r.stack) }

// MaxDepth returns the deepest the state stack has been.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Unbalanced returns the number of restores that had no matching save.
func (r *Recorder) Unbalanced() int { return r.unbalanced }

// Fills returns only the fill commands, in drawing order.
func (r *Recorder) Fills() []Command {
	var fills []Command
	for _, c := range r.Commands {
		if c.Op == OpFillRectangle || c.Op == OpFillEllipse {
			fills = append(fills, c)
		}
	}
	return fills
}

// Reset clears the log and state stack.
func (r *Recorder) Reset() {
	*r = Recorder{fill: defaultFill}
}

type jsonTrace struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Commands []jsonCommand `json:"commands"`
}

type jsonCommand struct {
	Op      Op       `json:"op"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Height  *float64 `json:"height,omitempty"`
	Color   string   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Depth   int      `json:"depth"`
}

// RenderJSON exports the recorded commands of r, drawn into a frame of the
// given size, as indented JSON.
func RenderJSON(r *Recorder, width, height float64) ([]byte, error) {
	out := jsonTrace{
		Width:    width,
		Height:   height,
		Commands: make([]jsonCommand, 0, len(r.Commands)),
	}
	for _, c := range r.Commands {
		jc := jsonCommand{Op: c.Op, Depth: c.Depth}
		switch c.Op {
		case OpFillRectangle, OpFillEllipse:
			x, y, w, h := c.Rect.Origin.X, c.Rect.Origin.Y, c.Rect.Size.W, c.Rect.Size.H
			jc.X, jc.Y, jc.Width, jc.Height = &x, &y, &w, &h
			jc.Color = hex(c.Color)
		case OpSetFillColor:
			jc.Color = hex(c.Color)
			if c.Color.A != 0xff {
				a := opacity(c.Color)
				jc.Opacity = &a
			}
		}
		out.Commands = append(out.Commands, jc)
	}
	return json.MarshalIndent(out, "", "  ")
}
