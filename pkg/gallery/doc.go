// Package gallery holds the named sample diagrams shown by the CLI.
//
// Each sample is built once at package init from the constructors in
// [github.com/matzehuels/diagrams/pkg/diagram] and is safe to share: diagrams
// are immutable, so the same tree can be rendered into any number of
// canvases, concurrently if needed.
//
//	s, err := gallery.Lookup("snowman")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(diagram.SizeOf(s.Diagram)) // 80x180
package gallery
