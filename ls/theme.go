package ls

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// DirMarker follows every directory name in a printed listing.
const DirMarker = "/"

// Theme styles printed listings. Colors are dropped when the output is not a
// terminal.
type Theme struct {
	Directory lipgloss.Style
	Table     lipgloss.Style
}

// NewTheme returns the default theme for output written to w.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Directory: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Table:     r.NewStyle(),
	}
}

func (t Theme) directory(name string) string {
	return t.Directory.Render(name) + DirMarker
}

func (t Theme) table(name string) string {
	return t.Table.Render(name)
}
