package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/gallery"
)

// samplesCommand creates the samples command, which lists the gallery.
func (c *CLI) samplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the available sample diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(samplesTable(gallery.All()).Render())
			printNewline()
			printNextStep("Render one", "diagrams render snowman -f svg,png")
			return nil
		},
	}
}

// sampleRow returns the table cells for s: name, size, shape count, description.
func sampleRow(s gallery.Sample) []string {
	return []string{
		s.Name,
		diagram.SizeOf(s.Diagram).String(),
		fmt.Sprint(diagram.Leaves(s.Diagram)),
		s.Description,
	}
}

func samplesTable(samples []gallery.Sample) *table.Table {
	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = sampleRow(s)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Sample", "Size", "Shapes", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return StyleValue
		})
}
