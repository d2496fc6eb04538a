package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// renderHelpContent renders the help text shown in the pager
func renderHelpContent() string {
	var help strings.Builder

	help.WriteString("multipick help\n\n")

	help.WriteString("Searching\n")
	help.WriteString("  tab, /        Focus the search field (opens the list)\n")
	help.WriteString("  type          Filter by label; accents, spaces and case are ignored\n")
	help.WriteString("  enter         Toggle the first matching option\n")
	help.WriteString("  esc, tab      Leave the search field (closes the list)\n")
	help.WriteString("\n")

	help.WriteString("Selection\n")
	help.WriteString("  ctrl+a        Select all matches, or clear when all are selected\n")
	help.WriteString("  ctrl+x, x     Clear the selection and the search text\n")
	help.WriteString("  space         Open or close the list\n")
	help.WriteString("\n")

	help.WriteString("Mouse\n")
	help.WriteString("  click box     Focus the search field\n")
	help.WriteString("  click ✕ chip  Remove that option\n")
	help.WriteString("  click ✕       Clear everything\n")
	help.WriteString("  click ▾       Open or close the list\n")
	help.WriteString("  click row     Toggle the option or \"Select all\"\n")
	help.WriteString("  click outside Close the list\n")
	help.WriteString("\n")

	help.WriteString("Other\n")
	help.WriteString("  ctrl+r        Recreate the control (resets search and open state)\n")
	help.WriteString("  ?             This help\n")
	help.WriteString("  q, ctrl+c     Quit\n")

	return help.String()
}

// ErrNoProgram is returned by Pager.Show before SetProgram was called.
var ErrNoProgram = errors.New("pager: program not set")

// Pager shows text in ov while the Bubble Tea program has released the terminal
type Pager struct {
	program *tea.Program
}

// NewPager creates a pager bound to no program yet
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// pagerConfig leaves nothing behind on exit; the restored alt screen redraws
// the page.
func pagerConfig() oviewer.Config {
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	return cfg
}

// Show runs ov on content and blocks until the user quits it.
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return ErrNoProgram
	}

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("opening help: %w", err)
	}
	root.SetConfig(pagerConfig())

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// ov needs a moment to reset the tty before Bubble Tea takes it back.
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return root.Run()
}

// showHelp returns a command that shows help using the pager
func (m *Model) showHelp() tea.Cmd {
	content := renderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.pager.Show(content)}
	}
}
