package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/diagrams/pkg/gallery"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// SampleListModel - Interactive sample selection
// =============================================================================

// SampleListModel is the bubbletea model for interactive sample selection.
type SampleListModel struct {
	Samples  []gallery.Sample
	Cursor   int
	Selected *gallery.Sample
	Height   int
	Offset   int
}

// NewSampleListModel creates a new sample list model.
func NewSampleListModel(samples []gallery.Sample) SampleListModel {
	return SampleListModel{
		Samples: samples,
		Height:  15,
	}
}

func (m SampleListModel) Init() tea.Cmd {
	return nil
}

func (m SampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Samples)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Samples) == 0 {
				return m, nil
			}
			s := m.Samples[m.Cursor]
			m.Selected = &s
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m SampleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sample"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Samples))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, sampleRow(m.Samples[i])...))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Sample", "Size", "Shapes", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Samples))))

	return b.String()
}

// pickSample runs the interactive picker and returns the chosen sample
// name, or "" if the user quit without choosing.
func pickSample() (string, error) {
	p := tea.NewProgram(NewSampleListModel(gallery.All()))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(SampleListModel)
	if !ok || fm.Selected == nil {
		return "", nil
	}
	return fm.Selected.Name, nil
}
