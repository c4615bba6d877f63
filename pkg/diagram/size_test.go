package diagram

import (
	"image/color"
	"strings"
	"testing"

	"github.com/matzehuels/diagrams/pkg/geom"
)

var red = color.NRGBA{R: 255, A: 255}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name string
		d    Diagram
		want geom.Size
	}{
		{"square", Square(10), geom.Sz(10, 10)},
		{"circle", Circle(5), geom.Sz(10, 10)},
		{"rectangle", Rectangle(3, 4), geom.Sz(3, 4)},
		{"ellipse", Ellipse(8, 2), geom.Sz(8, 2)},
		{"zero", Rectangle(0, 0), geom.Sz(0, 0)},
		{"stack width is max", Over(Rectangle(10, 1), Rectangle(30, 2)), geom.Sz(30, 3)},
		{"stack height is sum", Over(Circle(1), Circle(2)), geom.Sz(4, 6)},
		{"fill", Fill(Square(7), red), geom.Sz(7, 7)},
		{"align", Align(Rectangle(2, 9), 0.1, 0.9), geom.Sz(2, 9)},
		{"nested", Over(AlignRight(Circle(1)), Fill(Over(Square(2), Square(3)), red)), geom.Sz(3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeOf(tt.d); got != tt.want {
				t.Errorf("SizeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeOfBelowLaws(t *testing.T) {
	parts := []Diagram{
		Square(1), Circle(3), Rectangle(10, 0.5), Rectangle(0, 0),
		Over(Square(2), Circle(4)), Fill(Rectangle(6, 1), red),
	}
	for _, a := range parts {
		for _, b := range parts {
			sa, sb := SizeOf(a), SizeOf(b)
			got := SizeOf(Over(a, b))
			if got.H != sa.H+sb.H {
				t.Errorf("height %v, want %v+%v", got.H, sa.H, sb.H)
			}
			if got.W != max(sa.W, sb.W) {
				t.Errorf("width %v, want max(%v,%v)", got.W, sa.W, sb.W)
			}
		}
	}
}

func TestAttributesNeverChangeSize(t *testing.T) {
	base := Over(Circle(3), Rectangle(4, 11))
	want := SizeOf(base)

	wrappers := []func(Diagram) Diagram{
		func(d Diagram) Diagram { return Fill(d, red) },
		func(d Diagram) Diagram { return Fill(d, color.Black) },
		func(d Diagram) Diagram { return Align(d, 0, 0) },
		func(d Diagram) Diagram { return Align(d, -3, 7) },
		AlignRight, AlignLeft, AlignTop, AlignBottom,
	}

	d := base
	for i := 0; i < 3; i++ {
		for _, wrap := range wrappers {
			d = wrap(d)
			if got := SizeOf(d); got != want {
				t.Fatalf("SizeOf after %d wrappers = %v, want %v", i, got, want)
			}
		}
	}
}

func TestSizeOfIsIdempotent(t *testing.T) {
	shared := Over(Circle(2), Square(3))
	d := Over(shared, Fill(shared, red))
	first := SizeOf(d)
	for i := 0; i < 5; i++ {
		if got := SizeOf(d); got != first {
			t.Fatalf("call %d: SizeOf = %v, want %v", i, got, first)
		}
	}
}

func TestStack(t *testing.T) {
	a, b, c := Square(1), Square(2), Square(3)

	got, ok := Stack(a, b, c).(Below)
	if !ok {
		t.Fatalf("Stack(a, b, c) = %T, want Below", got)
	}
	if got.Top != a {
		t.Errorf("top = %v, want %v", got.Top, a)
	}
	rest, ok := got.Bottom.(Below)
	if !ok || rest.Top != b || rest.Bottom != c {
		t.Errorf("bottom = %v, want Below{b, c}", got.Bottom)
	}

	if Stack(a) != a {
		t.Error("Stack of one diagram should return it unchanged")
	}
	if s := SizeOf(Stack()); !s.IsZero() {
		t.Errorf("empty stack size = %v, want zero", s)
	}
}

func TestLeavesAndDepth(t *testing.T) {
	d := Fill(Stack(Circle(1), Circle(2), AlignRight(Circle(3))), red)
	if got := Leaves(d); got != 3 {
		t.Errorf("Leaves() = %d, want 3", got)
	}
	// Fill -> Below -> Below -> Align -> Primitive
	if got := Depth(d); got != 5 {
		t.Errorf("Depth() = %d, want 5", got)
	}
}

type bogus struct{}

func (bogus) isDiagram() {}

func TestUnknownVariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "unknown diagram") {
			t.Errorf("recover() = %v, want unknown diagram panic", r)
		}
	}()
	SizeOf(Over(Square(1), bogus{}))
}
