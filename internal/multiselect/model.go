package multiselect

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Props is everything the host hands the control on each render.
type Props struct {
	Options  []Option
	Selected []string

	// OnChange receives the complete replacement selection. When nil, the
	// change is delivered as a ChangeMsg instead.
	OnChange func(values []string)

	// Class picks a cosmetic theme, see ThemeFor.
	Class       string
	Label       string
	Placeholder string
}

// ChangeMsg carries a requested selection when Props.OnChange is nil.
type ChangeMsg struct {
	Values []string
}

// Document is the environment the control listens on for pointer presses
// anywhere on screen.
type Document interface {
	AddPointerDownListener(fn func(x, y int)) (remove func())
}

// Model is the searchable multi-select control. The selection lives with the
// host; the control only keeps its Session and asks for changes via OnChange.
type Model struct {
	props   Props
	session Session
	input   textinput.Model
	keys    KeyMap
	logger  *zap.Logger

	width   int
	originX int
	originY int

	release func()
}

// New creates a control for props. A nil logger disables logging.
func New(props Props, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = props.Placeholder

	m := &Model{
		props:  props,
		input:  ti,
		keys:   DefaultKeyMap(),
		logger: logger,
		width:  defaultWidth,
	}
	m.sizeInput()
	return m
}

// SetProps replaces the props, as a host re-render does.
func (m *Model) SetProps(props Props) {
	m.props = props
	m.input.Placeholder = props.Placeholder
}

// Props returns the current props.
func (m *Model) Props() Props { return m.props }

// Session returns the current transient UI state.
func (m *Model) Session() Session { return m.session }

// KeyMap returns the bindings active while the filter input is focused.
func (m *Model) KeyMap() KeyMap { return m.keys }

// SetWidth sets the outer width of the control in cells.
func (m *Model) SetWidth(width int) {
	m.width = clampWidth(width)
	m.sizeInput()
}

// SetOrigin tells the control where its top-left cell is on screen, so that
// mouse coordinates can be translated.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Height returns the number of rows the control currently occupies.
func (m *Model) Height() int {
	return computeLayout(m.props, m.session, m.width).height()
}

// Filtered returns the options matching the current filter text.
func (m *Model) Filtered() []Option {
	return Filter(m.props.Options, m.session.Filter)
}

// Focused reports whether the filter input has focus.
func (m *Model) Focused() bool { return m.input.Focused() }

// Focus gives the filter input focus, which opens the dropdown.
func (m *Model) Focus() tea.Cmd {
	cmd := m.input.Focus()
	m.apply(Event{Kind: EventFocus})
	return cmd
}

// Blur takes focus away from the filter input, which closes the dropdown.
func (m *Model) Blur() {
	if !m.input.Focused() {
		return
	}
	m.input.Blur()
	m.apply(Event{Kind: EventBlur})
}

// ToggleOpen opens or closes the dropdown without touching focus, as the
// chevron does.
func (m *Model) ToggleOpen() {
	m.apply(Event{Kind: EventToggle})
}

// Clear requests an empty selection and resets the filter text.
func (m *Model) Clear() tea.Cmd {
	return m.clearAll()
}

// Mount registers the outside-press listener on doc. Mounting twice keeps a
// single listener.
func (m *Model) Mount(doc Document) {
	if m.release != nil {
		return
	}
	m.release = doc.AddPointerDownListener(m.handleDocumentPointerDown)
	m.logger.Debug("mounted")
}

// Unmount releases the listener registered by Mount. It is safe to call when
// not mounted.
func (m *Model) Unmount() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
	m.logger.Debug("unmounted", zap.Bool("open", m.session.Open))
}

// Mounted reports whether the outside-press listener is registered.
func (m *Model) Mounted() bool { return m.release != nil }

// Contains reports whether the screen cell (x, y) belongs to the control:
// its label, header box, or the open panel.
func (m *Model) Contains(x, y int) bool {
	l := computeLayout(m.props, m.session, m.width)
	return l.hit(x-m.originX, y-m.originY).kind != regionNone
}

func (m *Model) handleDocumentPointerDown(x, y int) {
	if m.Contains(x, y) {
		return
	}
	m.Blur()
	m.apply(Event{Kind: EventPointerDownOutside})
}

// Init returns no initial command; the cursor only blinks once focused.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles keys while focused and left-button presses inside the
// control. Presses elsewhere only reach the control through its Document
// listener.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.press(msg.X, msg.Y)

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Blur):
			m.Blur()
			return m, nil
		case key.Matches(msg, m.keys.SelectAll):
			return m, m.toggleSelectAll()
		case key.Matches(msg, m.keys.Clear):
			return m, m.clearAll()
		case key.Matches(msg, m.keys.ToggleFirst):
			if filtered := m.Filtered(); len(filtered) > 0 {
				return m, m.toggle(filtered[0].Value)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.session.Filter {
			m.apply(Event{Kind: EventFilterInput, Text: v})
		}
		return m, cmd
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// press routes a left-button press at screen cell (x, y).
func (m *Model) press(x, y int) tea.Cmd {
	l := computeLayout(m.props, m.session, m.width)
	r := l.hit(x-m.originX, y-m.originY)
	switch r.kind {
	case regionChipRemove:
		return m.emit(Without(m.props.Selected, l.chips[r.index].option.Value))
	case regionClear:
		return m.clearAll()
	case regionChevron:
		m.apply(Event{Kind: EventToggle})
		return nil
	case regionHeader:
		cmd := m.input.Focus()
		m.apply(Event{Kind: EventHeaderClick})
		return cmd
	case regionSelectAll:
		m.apply(Event{Kind: EventPanelPointerDown})
		return m.toggleSelectAll()
	case regionOption:
		m.apply(Event{Kind: EventPanelPointerDown})
		return m.toggle(l.filtered[r.index].Value)
	case regionPanel:
		m.apply(Event{Kind: EventPanelPointerDown})
	}
	return nil
}

func (m *Model) toggle(value string) tea.Cmd {
	return m.emit(Toggle(m.props.Selected, value))
}

func (m *Model) toggleSelectAll() tea.Cmd {
	filtered := m.Filtered()
	return m.emit(SelectAll(filtered, !AllSelected(filtered, m.props.Selected)))
}

func (m *Model) clearAll() tea.Cmd {
	cmd := m.emit([]string{})
	m.input.SetValue("")
	m.apply(Event{Kind: EventClear})
	return cmd
}

// emit hands values to the host. OnChange may call SetProps before it
// returns, so callers must not hold on to props read earlier.
func (m *Model) emit(values []string) tea.Cmd {
	m.logger.Debug("selection change requested", zap.Strings("values", values))
	if m.props.OnChange != nil {
		m.props.OnChange(values)
		return nil
	}
	return func() tea.Msg { return ChangeMsg{Values: values} }
}

func (m *Model) apply(e Event) {
	before := m.session
	m.session = m.session.Apply(e)
	if before.Open != m.session.Open {
		m.logger.Debug("dropdown state changed",
			zap.Stringer("event", e.Kind),
			zap.Bool("open", m.session.Open))
	}
}

func (m *Model) sizeInput() {
	// Prompt plus one cell for the cursor.
	m.input.Width = clampWidth(m.width) - 2*boxInset - controlsWidth - 3
}
