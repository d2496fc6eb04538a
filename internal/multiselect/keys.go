package multiselect

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the control reacts to while its filter input is
// focused. Any other key edits the filter text.
type KeyMap struct {
	Blur        key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	ToggleFirst key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Blur: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc/tab", "leave filter"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all filtered"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear selection"),
		),
		ToggleFirst: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle top match"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleFirst, k.SelectAll, k.Clear, k.Blur}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleFirst, k.SelectAll},
		{k.Clear, k.Blur},
	}
}
