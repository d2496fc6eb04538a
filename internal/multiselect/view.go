package multiselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	selectAllText = "Select all"
	emptyText     = "No matching options"
)

// View renders the control: optional label, header box with chips and the
// filter input, and the dropdown panel while open.
func (m *Model) View() string {
	l := computeLayout(m.props, m.session, m.width)
	st := ThemeFor(m.props.Class)

	var sections []string
	if l.labelRows > 0 {
		sections = append(sections, st.Label.Render(truncateLabel(m.props.Label, l.width)))
	}

	lines := make([]string, 0, l.chipRows+1)
	for row := 0; row < l.chipRows; row++ {
		lines = append(lines, renderChipRow(l.chips, row, st))
	}
	input := ansi.Truncate(m.input.View(), l.inputWidth, "")
	lines = append(lines, padRight(input, l.inputWidth)+renderControls(st))

	box := st.Box
	if m.session.Open {
		box = st.BoxOpen
	}
	sections = append(sections, box.Render(strings.Join(padLines(lines, l.innerWidth), "\n")))

	if m.session.Open {
		sections = append(sections, m.renderPanel(l, st))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderPanel(l layout, st *Styles) string {
	rows := make([]string, 0, len(l.filtered)+2)
	rows = append(rows, checkbox(l.allSelected, st)+" "+selectAllText)
	rows = append(rows, st.Separator.Render(strings.Repeat("─", l.innerWidth)))
	if len(l.filtered) == 0 {
		rows = append(rows, st.Empty.Render(emptyText))
	}
	for _, o := range l.filtered {
		label := truncateLabel(o.Label, l.innerWidth-checkboxWidth)
		rows = append(rows, checkbox(IsSelected(m.props.Selected, o.Value), st)+" "+st.Option.Render(label))
	}
	return st.Panel.Render(strings.Join(padLines(rows, l.innerWidth), "\n"))
}

func renderChipRow(chips []chipSlot, row int, st *Styles) string {
	var b strings.Builder
	cursor := 0
	for _, c := range chips {
		if c.row != row {
			continue
		}
		b.WriteString(strings.Repeat(" ", c.col-cursor))
		b.WriteString(st.Chip.Render(c.text))
		b.WriteString(st.ChipRemove.Render(chipRemoveText))
		cursor = c.col + c.width
	}
	return b.String()
}

func renderControls(st *Styles) string {
	return " " + st.Clear.Render("✕") + " " + st.Divider.Render("│") + " " + st.Chevron.Render("▾")
}

func checkbox(checked bool, st *Styles) string {
	if checked {
		return st.Checked.Render("[x]")
	}
	return st.Unchecked.Render("[ ]")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padRight(line, width)
	}
	return out
}
