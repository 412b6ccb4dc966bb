package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/planar/homography"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleMatrix = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// renderMatrix draws h as a bracketed 3×3 block with right-aligned columns.
func renderMatrix(h homography.Homography) string {
	e := h.Entries()
	cells := make([]string, 9)
	width := 0
	for k, v := range e {
		cells[k] = formatFloat(v)
		width = max(width, len(cells[k]))
	}
	rows := make([]string, 3)
	for i := range rows {
		cols := make([]string, 3)
		for j := range cols {
			cols[j] = StyleNumber.Render(fmt.Sprintf("%*s", width, cells[i*3+j]))
		}
		rows[i] = strings.Join(cols, "  ")
	}

	return styleMatrix.Render(strings.Join(rows, "\n"))
}

// formatFloat prints v with up to 9 significant digits, folding -0 to 0.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%.9g", v)
	if s == "-0" {
		return "0"
	}
	return s
}

func successLine(msg string) string {
	return StyleSuccess.Render(iconSuccess) + " " + msg
}

func warningLine(msg string) string {
	return StyleWarning.Render(iconWarning) + " " + msg
}

func formatPoint(p homography.Point) string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}
