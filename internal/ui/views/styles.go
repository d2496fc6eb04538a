package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the page around the control
type Styles struct {
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values.
// None of them add margins or padding: the page layout places the control at
// fixed coordinates.
func NewStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
