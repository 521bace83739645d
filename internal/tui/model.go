package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/portreap/internal/proc"
	"github.com/pranshuparmar/portreap/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
			Background(lipgloss.Color("#5f00d7")). // Purple
			Bold(false)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")) // Dimmed Gray

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd75f")). // Green
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf5f")). // Orange-amber
			Bold(true)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#af87ff")). // Lavender
			Bold(true)
)

// Model wires the session state machine to the bubbletea event loop. The
// loop delivers keystrokes and timer ticks sequentially, so every session
// transition runs single-writer.
type Model struct {
	sess session.State
	keys keyMap
	help help.Model

	inspector  proc.Inspector
	terminator proc.Terminator

	width   int
	height  int
	version string

	quitting bool

	// killSeq invalidates the pending post-kill refresh and feedback-expiry
	// timers: each kill bumps it, and stale timer messages are dropped.
	killSeq int
}

func New(inspector proc.Inspector, terminator proc.Terminator, version string) Model {
	return Model{
		sess:       session.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		inspector:  inspector,
		terminator: terminator,
		version:    version,
	}
}

func Start(version string) error {
	if os.Getenv("COLORTERM") == "" {
		os.Setenv("COLORTERM", "truecolor") //nolint:errcheck
	}

	m := New(proc.LsofInspector{}, proc.SignalTerminator{}, version)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), waitTick())
}
