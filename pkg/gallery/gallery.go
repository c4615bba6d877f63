package gallery

import (
	"slices"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/errors"
)

// Sample is a named diagram with a one-line description.
type Sample struct {
	Name        string
	Description string
	Diagram     diagram.Diagram
}

var samples = []Sample{
	{"circle", "a single circle", diagram.Circle(50)},
	{"square", "a single square", diagram.Square(100)},
	{"snowman", "three stacked circles of growing radius", snowman()},
	{"traffic-light", "colored lamps above a pole", trafficLight()},
	{"aligned", "squares pushed against each edge of their row", aligned()},
	{"nested-fill", "an inner fill overriding an outer one", nestedFill()},
	{"tower", "rectangles of increasing width, narrowest on top", tower()},
}

// Lookup returns the sample called name.
func Lookup(name string) (Sample, error) {
	if err := errors.ValidateSampleName(name); err != nil {
		return Sample{}, err
	}
	i := slices.IndexFunc(samples, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, errors.New(errors.ErrCodeSampleNotFound, "unknown sample %q (see 'diagrams samples')", name)
	}
	return samples[i], nil
}

// Names returns the sample names in presentation order.
func Names() []string {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name
	}
	return names
}

// All returns every sample in presentation order.
func All() []Sample {
	return slices.Clone(samples)
}

func snowman() diagram.Diagram {
	return diagram.Fill(diagram.Stack(
		diagram.Circle(20),
		diagram.Circle(30),
		diagram.Circle(40),
	), diagram.MustParseColor("lightsteelblue"))
}

func trafficLight() diagram.Diagram {
	lamp := func(name string) diagram.Diagram {
		return diagram.Fill(diagram.Circle(15), diagram.MustParseColor(name))
	}
	pole := diagram.Fill(diagram.Rectangle(10, 60), diagram.MustParseColor("dimgray"))
	return diagram.Stack(lamp("red"), lamp("orange"), lamp("green"), pole)
}

func aligned() diagram.Diagram {
	row := func(d diagram.Diagram) diagram.Diagram {
		return diagram.Over(d, diagram.Fill(diagram.Rectangle(100, 2), diagram.MustParseColor("silver")))
	}
	return diagram.Stack(
		row(diagram.AlignLeft(diagram.Square(20))),
		row(diagram.AlignRight(diagram.Square(20))),
		row(diagram.Align(diagram.Square(20), 0.25, 0.5)),
		row(diagram.AlignBottom(diagram.Circle(10))),
		diagram.Rectangle(100, 20),
	)
}

func nestedFill() diagram.Diagram {
	return diagram.Fill(diagram.Stack(
		diagram.Circle(20),
		diagram.Fill(diagram.Square(40), diagram.MustParseColor("steelblue")),
		diagram.Circle(20),
	), diagram.MustParseColor("tomato"))
}

func tower() diagram.Diagram {
	colors := []string{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"}
	floors := make([]diagram.Diagram, len(colors))
	for i, c := range colors {
		floors[i] = diagram.Fill(diagram.Rectangle(float64(20*(i+1)), 10), diagram.MustParseColor(c))
	}
	return diagram.Stack(floors...)
}
