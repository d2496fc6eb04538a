package multiselect

// EventKind identifies a UI event that can change a Session.
type EventKind int

const (
	EventFocus EventKind = iota
	EventBlur
	EventToggle
	EventHeaderClick
	EventPointerDownOutside
	EventPanelPointerDown
	EventFilterInput
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventToggle:
		return "toggle"
	case EventHeaderClick:
		return "header_click"
	case EventPointerDownOutside:
		return "pointer_down_outside"
	case EventPanelPointerDown:
		return "panel_pointer_down"
	case EventFilterInput:
		return "filter_input"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event is an input to Session.Apply. Text is only read for EventFilterInput.
type Event struct {
	Kind EventKind
	Text string
}

// Session is the transient state owned by the control: whether the dropdown
// panel is shown and the raw filter text. The zero value is the initial state.
type Session struct {
	Open   bool
	Filter string
}

// Apply returns the session that results from e.
func (s Session) Apply(e Event) Session {
	switch e.Kind {
	case EventFocus, EventHeaderClick:
		s.Open = true
	case EventBlur, EventPointerDownOutside:
		s.Open = false
	case EventToggle:
		s.Open = !s.Open
	case EventFilterInput:
		s.Filter = e.Text
	case EventClear:
		s.Filter = ""
	case EventPanelPointerDown:
		// Presses inside the panel must not close it or steal focus.
	}
	return s
}
