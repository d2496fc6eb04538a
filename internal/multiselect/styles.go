package multiselect

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the control.
// Box and Panel must keep a one-cell border and one column of horizontal
// padding; the layout depends on it.
type Styles struct {
	Label      lipgloss.Style
	Box        lipgloss.Style
	BoxOpen    lipgloss.Style
	Chip       lipgloss.Style
	ChipRemove lipgloss.Style
	Clear      lipgloss.Style
	Divider    lipgloss.Style
	Chevron    lipgloss.Style
	Panel      lipgloss.Style
	Checked    lipgloss.Style
	Unchecked  lipgloss.Style
	Option     lipgloss.Style
	Separator  lipgloss.Style
	Empty      lipgloss.Style
}

// NewStyles creates the default theme.
func NewStyles() *Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Label:      lipgloss.NewStyle().Bold(true),
		Box:        box,
		BoxOpen:    box.BorderForeground(lipgloss.Color("33")), // blue
		Chip:       lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")),
		ChipRemove: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Clear:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Chevron:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Panel:      box,
		Checked:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Unchecked:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Option:     lipgloss.NewStyle(),
		Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

// ThemeFor returns the styles registered under class. Unknown classes get
// the default theme.
func ThemeFor(class string) *Styles {
	s := NewStyles()
	switch class {
	case "accent":
		s.BoxOpen = s.Box.BorderForeground(lipgloss.Color("99"))
		s.Chip = s.Chip.Background(lipgloss.Color("57")).Foreground(lipgloss.Color("231"))
		s.Checked = s.Checked.Foreground(lipgloss.Color("99"))
		s.Label = s.Label.Foreground(lipgloss.Color("99"))
	case "muted":
		s.BoxOpen = s.Box
		s.Chip = lipgloss.NewStyle().Faint(true)
		s.Checked = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
	}
	return s
}
