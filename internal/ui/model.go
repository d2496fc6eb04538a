package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"multipick/internal/config"
	"multipick/internal/eventbus"
	"multipick/internal/multiselect"
	"multipick/internal/ui/document"
	"multipick/internal/ui/views"
)

const (
	title = "multipick"

	// maxControlWidth keeps the control readable on wide terminals.
	maxControlWidth = 60
)

// Model is the page hosting the selection control. It owns the selection and
// the option catalog; the control only requests changes.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	selected   []string
	doc        *document.Document
	control    *multiselect.Model
	generation int

	width    int
	height   int
	keys     KeyMap
	help     help.Model
	renderer *views.Renderer
	pager    *Pager
	closed   bool
}

// NewModel creates the page and mounts the control. A nil logger disables
// logging.
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		bus:      bus,
		config:   cfg,
		logger:   logger,
		selected: []string{},
		doc:      document.New(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
		pager:    NewPager(),
	}
	m.mountControl()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Selected returns the current selection.
func (m *Model) Selected() []string {
	return m.selected
}

// Control returns the mounted control.
func (m *Model) Control() *multiselect.Model {
	return m.control
}

// Document returns the surface pointer presses are dispatched on.
func (m *Model) Document() *document.Document {
	return m.doc
}

func (m *Model) props() multiselect.Props {
	return multiselect.Props{
		Options:     m.config.Options,
		Selected:    m.selected,
		OnChange:    m.handleChange,
		Class:       m.config.Class,
		Label:       m.config.Label,
		Placeholder: m.config.Placeholder,
	}
}

// handleChange accepts a replacement selection from the control and
// re-renders it with the new props.
func (m *Model) handleChange(values []string) {
	changed := !slices.Equal(values, m.selected)
	m.selected = values
	m.control.SetProps(m.props())
	if !changed {
		return
	}

	m.logger.Info("Selected values", zap.Strings("values", values))
	if m.bus != nil {
		m.bus.Publish(eventbus.SelectionChangedEvent{Values: values})
	}
}

// mountControl creates a fresh control, so its session starts closed with an
// empty filter, and registers its document listener.
func (m *Model) mountControl() {
	m.generation++
	m.control = multiselect.New(m.props(), m.logger.Named("multiselect"))
	m.control.SetWidth(m.controlWidth())
	m.control.SetOrigin(views.ControlOriginX, views.ControlOriginY)
	m.control.Mount(m.doc)

	if m.bus != nil {
		m.bus.Publish(eventbus.ControlMountedEvent{Generation: m.generation})
	}
}

func (m *Model) unmountControl() {
	if m.control == nil || !m.control.Mounted() {
		return
	}
	wasOpen := m.control.Session().Open
	m.control.Unmount()

	if m.bus != nil {
		m.bus.Publish(eventbus.ControlUnmountedEvent{Generation: m.generation, WasOpen: wasOpen})
	}
}

// Close unmounts the control. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.unmountControl()
}

func (m *Model) controlWidth() int {
	if m.config.UISettings.Width > 0 {
		return m.config.UISettings.Width
	}
	if m.width == 0 {
		return 0 // control default
	}
	return min(m.width-2*views.ControlOriginX, maxControlWidth)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.control.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.control.SetWidth(m.controlWidth())
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		inside := m.control.Contains(msg.X, msg.Y)
		m.doc.DispatchPointerDown(msg.X, msg.Y)
		if !inside {
			return m, nil
		}
		var cmd tea.Cmd
		m.control, cmd = m.control.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.control.Focused() {
			var cmd tea.Cmd
			m.control, cmd = m.control.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case multiselect.ChangeMsg:
		m.handleChange(msg.Values)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in the page
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.control, cmd = m.control.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Focus):
		return m, m.control.Focus()
	case key.Matches(msg, m.keys.Toggle):
		m.control.ToggleOpen()
	case key.Matches(msg, m.keys.Clear):
		return m, m.control.Clear()
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	case key.Matches(msg, m.keys.Remount):
		m.unmountControl()
		m.mountControl()
		m.logger.Debug("control remounted", zap.Int("generation", m.generation))
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// View renders the page
func (m *Model) View() string {
	var helpView string
	if m.control.Focused() {
		helpView = m.help.View(m.control.KeyMap())
	} else {
		helpView = m.help.View(m.keys)
	}

	return m.renderer.Render(views.ViewState{
		Width:    m.width,
		Title:    title,
		Control:  m.control.View(),
		Selected: m.selected,
		Help:     helpView,
	})
}
