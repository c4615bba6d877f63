package render_test

import (
	"image/color"
	"reflect"
	"sync"
	"testing"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/geom"
	"github.com/matzehuels/diagrams/pkg/render"
	"github.com/matzehuels/diagrams/pkg/render/sink"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestDrawPrimitiveIsCentered(t *testing.T) {
	rec := sink.NewRecorder()
	render.Draw(rec, diagram.Rectangle(100, 200), geom.R(0, 0, 300, 300))

	fills := rec.Fills()
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	if fills[0].Op != sink.OpFillRectangle {
		t.Errorf("op = %v, want %v", fills[0].Op, sink.OpFillRectangle)
	}
	if want := geom.R(75, 0, 150, 300); fills[0].Rect != want {
		t.Errorf("rect = %v, want %v", fills[0].Rect, want)
	}
	if fills[0].Color != black {
		t.Errorf("color = %v, want default black", fills[0].Color)
	}
}

func TestDrawShapes(t *testing.T) {
	tests := []struct {
		name string
		d    diagram.Diagram
		op   sink.Op
	}{
		{"circle", diagram.Circle(5), sink.OpFillEllipse},
		{"ellipse", diagram.Ellipse(5, 2), sink.OpFillEllipse},
		{"square", diagram.Square(5), sink.OpFillRectangle},
		{"rectangle", diagram.Rectangle(5, 2), sink.OpFillRectangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sink.NewRecorder()
			render.Draw(rec, tt.d, geom.R(0, 0, 10, 10))
			fills := rec.Fills()
			if len(fills) != 1 || fills[0].Op != tt.op {
				t.Errorf("fills = %+v, want one %v", fills, tt.op)
			}
		})
	}
}

func TestDrawBelowSplitsProportionally(t *testing.T) {
	rec := sink.NewRecorder()
	d := diagram.Over(diagram.Square(10), diagram.Square(20))
	render.Draw(rec, d, geom.R(0, 0, 300, 300))

	fills := rec.Fills()
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	// Top first: 100 high band at y=200, square centered in it.
	if want := geom.R(100, 200, 100, 100); fills[0].Rect != want {
		t.Errorf("top = %v, want %v", fills[0].Rect, want)
	}
	if want := geom.R(50, 0, 200, 200); fills[1].Rect != want {
		t.Errorf("bottom = %v, want %v", fills[1].Rect, want)
	}
}

func TestDrawFillScopes(t *testing.T) {
	rec := sink.NewRecorder()
	d := diagram.Fill(
		diagram.Stack(
			diagram.Square(1),
			diagram.Fill(diagram.Square(1), blue),
			diagram.Square(1),
		),
		red,
	)
	outside := diagram.Over(d, diagram.Square(1))
	render.Draw(rec, outside, geom.R(0, 0, 10, 40))

	var got []color.NRGBA
	for _, f := range rec.Fills() {
		got = append(got, f.Color)
	}
	want := []color.NRGBA{red, blue, red, black}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fill colors = %v, want %v", got, want)
	}
	if rec.MaxDepth() != 2 {
		t.Errorf("max depth = %d, want 2", rec.MaxDepth())
	}
}

func TestDrawAlignment(t *testing.T) {
	bounds := geom.R(0, 0, 200, 100)
	tests := []struct {
		name string
		d    diagram.Diagram
		want geom.Rect
	}{
		{"default center", diagram.Square(10), geom.R(50, 0, 100, 100)},
		{"right", diagram.AlignRight(diagram.Square(10)), geom.R(100, 0, 100, 100)},
		{"left", diagram.AlignLeft(diagram.Square(10)), geom.R(0, 0, 100, 100)},
		{"top of wide", diagram.AlignTop(diagram.Rectangle(40, 10)), geom.R(0, 50, 200, 50)},
		{"bottom of wide", diagram.AlignBottom(diagram.Rectangle(40, 10)), geom.R(0, 0, 200, 50)},
		{"custom", diagram.Align(diagram.Square(10), 0.25, 0), geom.R(25, 0, 100, 100)},
		{"overflow", diagram.Align(diagram.Square(10), 1.5, 0.5), geom.R(150, 0, 100, 100)},
		{"nested alignments", diagram.AlignLeft(diagram.AlignRight(diagram.Square(10))), geom.R(0, 0, 100, 100)},
		{"fill keeps alignment", diagram.AlignRight(diagram.Fill(diagram.Square(10), red)), geom.R(100, 0, 100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sink.NewRecorder()
			render.Draw(rec, tt.d, bounds)
			fills := rec.Fills()
			if len(fills) != 1 {
				t.Fatalf("got %d fills, want 1", len(fills))
			}
			if fills[0].Rect != tt.want {
				t.Errorf("rect = %v, want %v", fills[0].Rect, tt.want)
			}
		})
	}
}

func TestDrawAlignedStackKeepsChildrenTogether(t *testing.T) {
	// The aligned stack is 10 wide in a 100 wide frame; both children sit
	// flush right inside the fitted 10x20 column scaled to 50x100.
	rec := sink.NewRecorder()
	d := diagram.AlignRight(diagram.Over(diagram.Square(10), diagram.Square(10)))
	render.Draw(rec, d, geom.R(0, 0, 100, 100))

	fills := rec.Fills()
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	if want := geom.R(50, 50, 50, 50); fills[0].Rect != want {
		t.Errorf("top = %v, want %v", fills[0].Rect, want)
	}
	if want := geom.R(50, 0, 50, 50); fills[1].Rect != want {
		t.Errorf("bottom = %v, want %v", fills[1].Rect, want)
	}
}

func TestDrawInnerAlignmentOverridesOuter(t *testing.T) {
	// The outer left alignment places the 40x20 stack; inside it the small
	// square is pushed right by its own alignment.
	rec := sink.NewRecorder()
	d := diagram.AlignLeft(diagram.Over(
		diagram.AlignRight(diagram.Square(10)),
		diagram.Rectangle(40, 10),
	))
	render.Draw(rec, d, geom.R(0, 0, 200, 100))

	fills := rec.Fills()
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	if want := geom.R(150, 50, 50, 50); fills[0].Rect != want {
		t.Errorf("square = %v, want %v", fills[0].Rect, want)
	}
	if want := geom.R(0, 0, 200, 50); fills[1].Rect != want {
		t.Errorf("rectangle = %v, want %v", fills[1].Rect, want)
	}
}

func TestDrawDegenerateSizes(t *testing.T) {
	d := diagram.Stack(
		diagram.Rectangle(0, 0),
		diagram.Fill(diagram.Rectangle(0, 0), red),
		diagram.AlignTop(diagram.Rectangle(5, 0)),
	)
	rec := sink.NewRecorder()
	render.Draw(rec, d, geom.R(0, 0, 90, 60))

	for _, f := range rec.Fills() {
		if !geom.R(0, 0, 90, 60).Contains(f.Rect, 1e-9) {
			t.Errorf("fill %v escapes bounds", f.Rect)
		}
	}
	if rec.Depth() != 0 || rec.Unbalanced() != 0 {
		t.Errorf("depth = %d, unbalanced = %d, want 0, 0", rec.Depth(), rec.Unbalanced())
	}
}

func deepTree(n int) diagram.Diagram {
	d := diagram.Circle(1)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			d = diagram.Fill(d, color.NRGBA{R: uint8(i), A: 255})
		case 1:
			d = diagram.Over(d, diagram.Fill(diagram.Square(1), blue))
		case 2:
			d = diagram.AlignRight(d)
		default:
			d = diagram.Over(diagram.Fill(diagram.Fill(diagram.Square(2), red), blue), d)
		}
	}
	return d
}

func TestDrawStateBalance(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20, 100} {
		rec := sink.NewRecorder()
		rec.SaveState()
		render.Draw(rec, deepTree(n), geom.R(0, 0, 640, 480))
		if rec.Depth() != 1 {
			t.Errorf("n=%d: depth = %d, want 1", n, rec.Depth())
		}
		if rec.Unbalanced() != 0 {
			t.Errorf("n=%d: unbalanced = %d", n, rec.Unbalanced())
		}
	}
}

// panicky fails on the nth fill.
type panicky struct {
	*sink.Recorder
	n int
}

func (p *panicky) FillRectangle(r geom.Rect) {
	if p.n--; p.n == 0 {
		panic("canvas failure")
	}
	p.Recorder.FillRectangle(r)
}

func TestDrawStateBalanceOnPanic(t *testing.T) {
	c := &panicky{Recorder: sink.NewRecorder(), n: 1}
	d := diagram.Fill(diagram.Fill(diagram.Fill(diagram.Square(1), red), blue), red)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic from canvas")
			}
		}()
		render.Draw(c, d, geom.R(0, 0, 10, 10))
	}()

	if c.Depth() != 0 {
		t.Errorf("depth after panic = %d, want 0", c.Depth())
	}
	if c.MaxDepth() != 3 {
		t.Errorf("max depth = %d, want 3", c.MaxDepth())
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	d := deepTree(30)
	bounds := geom.R(-10, 5, 400, 300)

	first := sink.NewRecorder()
	render.Draw(first, d, bounds)
	for i := 0; i < 3; i++ {
		again := sink.NewRecorder()
		render.Draw(again, d, bounds)
		if !reflect.DeepEqual(first.Commands, again.Commands) {
			t.Fatalf("run %d produced a different command log", i)
		}
	}
}

func TestDrawSharedTreeConcurrently(t *testing.T) {
	d := deepTree(40)
	bounds := geom.R(0, 0, 800, 600)

	want := sink.NewRecorder()
	render.Draw(want, d, bounds)

	const n = 8
	recs := make([]*sink.Recorder, n)
	var wg sync.WaitGroup
	for i := range recs {
		recs[i] = sink.NewRecorder()
		wg.Add(1)
		go func(rec *sink.Recorder) {
			defer wg.Done()
			render.Draw(rec, d, bounds)
		}(recs[i])
	}
	wg.Wait()

	for i, rec := range recs {
		if !reflect.DeepEqual(rec.Commands, want.Commands) {
			t.Errorf("goroutine %d produced a different command log", i)
		}
	}
}

func TestDrawNilCanvas(t *testing.T) {
	render.Draw(nil, diagram.Square(1), geom.R(0, 0, 1, 1))
}
