package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/uvcast/internal/constants"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	uvCellStyle = cellStyle.
			Align(lipgloss.Right)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
)

// Plain renders n without styling: "" for empty, the text for text nodes,
// and tab separated lines (header first) for tables.
func Plain(n Node) string {
	switch n.Kind {
	case NodeText:
		return n.Text
	case NodeTable:
		lines := make([]string, 0, len(n.Rows)+1)
		lines = append(lines, strings.Join(n.Header, "\t"))
		for _, row := range n.Rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

// Styled renders n for a terminal. A width of 0 lets the table size itself.
func Styled(n Node, width int) string {
	switch n.Kind {
	case NodeText:
		if n.Text == constants.ErrorText {
			return errorStyle.Render(n.Text)
		}
		return loadingStyle.Render(n.Text)
	case NodeTable:
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			Headers(n.Header...).
			Rows(n.Rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 1:
					return uvCellStyle
				default:
					return cellStyle
				}
			})
		if width > 0 {
			t = t.Width(width)
		}
		return t.String()
	default:
		return ""
	}
}
