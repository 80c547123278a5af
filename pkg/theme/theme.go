// Package theme defines colors and width helpers for terminal report rendering.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used when drawing a result tree.
type Theme struct {
	Name    string
	Success lipgloss.Style // outcomes that matched expectations
	Warning lipgloss.Style // unexpected output
	Error   lipgloss.Style // unexpected build and runtime errors
	Muted   lipgloss.Style // anticipated errors and tree furniture
	Bold    lipgloss.Style
}

// Default returns the standard ANSI color theme.
func Default() Theme {
	return Theme{
		Name:    "default",
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// Mono returns a monochrome theme (no colors). Suitable for piped output
// and for tests that compare rendered bytes.
func Mono() Theme {
	return Theme{
		Name:    "mono",
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
	}
}

// ByName returns a theme by name, defaulting to Default.
func ByName(name string) Theme {
	switch name {
	case "mono":
		return Mono()
	default:
		return Default()
	}
}
