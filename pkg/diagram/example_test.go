package diagram_test

import (
	"fmt"

	"github.com/matzehuels/diagrams/pkg/diagram"
)

func ExampleSizeOf() {
	snowman := diagram.Stack(
		diagram.Circle(10),
		diagram.Circle(20),
		diagram.Circle(30),
	)
	fmt.Println(diagram.SizeOf(snowman))

	// Attributes do not change the size.
	fmt.Println(diagram.SizeOf(diagram.AlignRight(diagram.Fill(snowman, diagram.MustParseColor("white")))))
	// Output:
	// 60x120
	// 60x120
}

func ExampleOver() {
	d := diagram.Over(diagram.Rectangle(40, 10), diagram.Square(20))
	fmt.Println(diagram.SizeOf(d))
	// Output:
	// 40x30
}
