package multiselect

import "github.com/mattn/go-runewidth"

const (
	defaultWidth = 48
	minWidth     = 24

	// boxInset is the border plus padding on each side of the header box
	// and the panel.
	boxInset = 2

	// The controls right of the filter input render as " ✕ │ ▾".
	controlsWidth = 6
	clearOffset   = 1
	chevronOffset = 5

	chipRemoveText  = " ✕"
	chipRemoveWidth = 2
	chipGap         = 2

	// checkboxWidth covers "[x] ".
	checkboxWidth = 4

	// Panel rows above the first option: border, select all, separator.
	panelHeaderRows = 3
)

var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type regionKind int

const (
	regionNone regionKind = iota
	regionLabel
	regionChipRemove
	regionClear
	regionChevron
	regionHeader
	regionSelectAll
	regionOption
	regionPanel
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type region struct {
	kind  regionKind
	rect  rect
	index int
}

// chipSlot places one chip inside the header content area.
type chipSlot struct {
	option Option
	text   string
	row    int
	col    int
	width  int
}

// layout is the geometry of one render, relative to the control origin.
// View and hit-testing both derive from computeLayout so they cannot drift.
type layout struct {
	width       int
	innerWidth  int
	labelRows   int
	chips       []chipSlot
	chipRows    int
	inputWidth  int
	header      rect
	panel       rect
	open        bool
	filtered    []Option
	allSelected bool
	regions     []region
}

func clampWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return cellWidth.Truncate(s, width, "…")
}

func computeLayout(props Props, session Session, width int) layout {
	l := layout{width: clampWidth(width), open: session.Open}
	l.innerWidth = l.width - 2*boxInset
	l.inputWidth = l.innerWidth - controlsWidth
	if props.Label != "" {
		l.labelRows = 1
		l.regions = append(l.regions, region{kind: regionLabel, rect: rect{0, 0, l.width, 1}})
	}

	row, col := 0, 0
	for _, o := range SelectedOptions(props.Options, props.Selected) {
		text := truncateLabel(o.Label, l.innerWidth-chipRemoveWidth)
		w := cellWidth.StringWidth(text) + chipRemoveWidth
		if col > 0 && col+w > l.innerWidth {
			row++
			col = 0
		}
		l.chips = append(l.chips, chipSlot{option: o, text: text, row: row, col: col, width: w})
		col += w + chipGap
	}
	if len(l.chips) > 0 {
		l.chipRows = row + 1
	}

	top := l.labelRows
	l.header = rect{0, top, l.width, l.chipRows + 3}
	contentY := top + 1
	for i, c := range l.chips {
		l.regions = append(l.regions, region{
			kind:  regionChipRemove,
			rect:  rect{boxInset + c.col + c.width - chipRemoveWidth, contentY + c.row, chipRemoveWidth, 1},
			index: i,
		})
	}
	inputY := contentY + l.chipRows
	l.regions = append(l.regions,
		region{kind: regionClear, rect: rect{boxInset + l.inputWidth + clearOffset, inputY, 1, 1}},
		region{kind: regionChevron, rect: rect{boxInset + l.inputWidth + chevronOffset, inputY, 1, 1}},
		region{kind: regionHeader, rect: l.header},
	)

	l.filtered = Filter(props.Options, session.Filter)
	l.allSelected = AllSelected(l.filtered, props.Selected)
	if !session.Open {
		return l
	}

	py := l.header.y + l.header.h
	rows := len(l.filtered)
	if rows == 0 {
		rows = 1 // empty-state line
	}
	l.panel = rect{0, py, l.width, panelHeaderRows + rows + 1}
	l.regions = append(l.regions, region{kind: regionSelectAll, rect: rect{0, py + 1, l.width, 1}})
	for i := range l.filtered {
		l.regions = append(l.regions, region{
			kind:  regionOption,
			rect:  rect{0, py + panelHeaderRows + i, l.width, 1},
			index: i,
		})
	}
	l.regions = append(l.regions, region{kind: regionPanel, rect: l.panel})
	return l
}

// hit returns the most specific region under (x, y). Regions are ordered
// from specific to general, so the first match wins.
func (l layout) hit(x, y int) region {
	for _, r := range l.regions {
		if r.rect.contains(x, y) {
			return r
		}
	}
	return region{kind: regionNone}
}

// height is the number of rows the control occupies.
func (l layout) height() int {
	h := l.labelRows + l.header.h
	if l.open {
		h += l.panel.h
	}
	return h
}
