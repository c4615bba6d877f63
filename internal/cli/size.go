package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/gallery"
)

// sizeCommand creates the size command, which prints a sample's virtual size.
func (c *CLI) sizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "size [sample]",
		Short:             "Print the inferred size of a sample diagram",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := gallery.Lookup(args[0])
			if err != nil {
				return err
			}
			size := diagram.SizeOf(s.Diagram)
			loggerFromContext(cmd.Context()).Debug("inferred size", "sample", s.Name, "size", size)

			printKeyValue("sample", s.Name)
			printKeyValue("size", size.String())
			printKeyValue("aspect", aspect(size.W, size.H))
			printKeyValue("shapes", fmt.Sprint(diagram.Leaves(s.Diagram)))
			printKeyValue("depth", fmt.Sprint(diagram.Depth(s.Diagram)))
			return nil
		},
	}
}

// aspect formats w:h as a single ratio, or "-" when h is zero.
func aspect(w, h float64) string {
	if h == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3g", w/h)
}
