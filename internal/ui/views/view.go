package views

import (
	"strings"
)

// The control is drawn at a fixed offset: title row, blank row, then the
// control indented by two columns.
const (
	ControlOriginX = 2
	ControlOriginY = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Title    string
	Control  string
	Selected []string
	Help     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n\n")

	indent := strings.Repeat(" ", ControlOriginX)
	for _, line := range strings.Split(state.Control, "\n") {
		content.WriteString(indent)
		content.WriteString(line)
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderSelected(state.Selected))
	content.WriteString("\n\n")
	content.WriteString(r.styles.Help.Render(state.Help))

	return content.String()
}

// renderSelected shows the host-owned selection values
func (r *Renderer) renderSelected(values []string) string {
	label := r.styles.Status.Render("Selected values: ")
	if len(values) == 0 {
		return label + r.styles.Dim.Render("none")
	}
	return label + r.styles.Selected.Render(strings.Join(values, ", "))
}
