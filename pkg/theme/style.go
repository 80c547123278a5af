package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadRight pads a string to the specified visual width, using spaces.
// This correctly handles wide characters and embedded ANSI escape
// sequences, which byte-length padding via fmt.Sprintf("%-*s") does not.
func PadRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// PadLeft pads a string to the specified visual width, using spaces.
func PadLeft(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return strings.Repeat(" ", width-vw) + s
}

// VisualWidth returns the display width of a string in terminal cells,
// ignoring ANSI escape sequences.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}
