package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"

	"github.com/pranshuparmar/portreap/internal/session"
)

const (
	colPort    = 7
	colProcess = 18
	colPID     = 8
	colUser    = 12
	colAddress = 24

	// Lines of chrome around the entity list: title, status, filter, header,
	// footer and their spacing.
	chromeLines = 9
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("portreap"))
	b.WriteString("\n\n")

	b.WriteString(" " + m.statusLine() + "\n")
	b.WriteString(" " + m.filterLine() + "\n")

	if m.sess.HelpVisible {
		b.WriteString(m.helpOverlay(width))
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer(width))
	return b.String()
}

func (m Model) statusLine() string {
	if m.sess.ConfirmPending {
		if ent, ok := m.sess.SelectedEntity(); ok {
			return confirmStyle.Render(fmt.Sprintf("Kill %s (PID %s)? [y]es / [n]o", ent.Process, ent.PID))
		}
	}
	switch m.sess.Feedback.Kind {
	case session.FeedbackSuccess:
		return successStyle.Render(m.sess.Feedback.Text)
	case session.FeedbackError:
		return errorStyle.Render(m.sess.Feedback.Text)
	}
	if m.sess.Mode == session.ModeSearch {
		return "Mode: Searching (Enter keeps the filter, Esc cancels)"
	}
	return "Mode: Navigation (Press / to search, ? for help)"
}

func (m Model) filterLine() string {
	if m.sess.Mode != session.ModeSearch && m.sess.Query == "" {
		return ""
	}
	line := promptStyle.Render("Filter: ") + m.sess.Query
	if m.sess.Mode == session.ModeSearch {
		line += "█"
	}
	return line
}

// listCapacity is the number of entity rows that fit the terminal.
func (m Model) listCapacity() int {
	if m.height <= 0 {
		return 20
	}
	capacity := m.height - chromeLines
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

func (m Model) listView() string {
	var b strings.Builder

	header := fmt.Sprintf(" %s%s%s%s%s",
		cell("PORT", colPort),
		cell("PROCESS", colProcess),
		cell("PID", colPID),
		cell("USER", colUser),
		cell("ADDRESS", colAddress),
	)
	b.WriteString(headerStyle.Render(header) + "\n")

	filtered := m.sess.Filtered()
	if len(filtered) == 0 {
		b.WriteString(" " + dimStyle.Render("No listening sockets found.") + "\n")
		return b.String()
	}

	start, end := session.Window(len(filtered), m.sess.Selected, m.listCapacity())
	for i := start; i < end; i++ {
		e := filtered[i]
		row := fmt.Sprintf("%s%s%s%s%s",
			cell(fmt.Sprintf("%d", e.Port), colPort),
			cell(e.Process, colProcess),
			cell(e.PID, colPID),
			cell(e.User, colUser),
			cell(e.Address, colAddress),
		)
		if i == m.sess.Selected {
			b.WriteString(selectedStyle.Render("▸"+row) + "\n")
		} else {
			b.WriteString(" " + row + "\n")
		}
	}
	return b.String()
}

func (m Model) helpOverlay(width int) string {
	var b strings.Builder

	b.WriteString(" " + helpTitleStyle.Render("Help") + "\n\n")

	intro := "portreap lists local TCP listening sockets and kills the owning " +
		"process on demand. Filtering matches the process name, the port " +
		"number, or the bound address."
	b.WriteString(wrap.String(intro, width-4) + "\n\n")

	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys) + "\n\n")

	b.WriteString(dimStyle.Render("Press any key to close.") + "\n")
	return b.String()
}

func (m Model) footer(width int) string {
	total := fmt.Sprintf("Total: %d", len(m.sess.Filtered()))
	if m.sess.Query != "" {
		total += " [filtered]"
	}
	content := total + " • " + m.help.View(m.keys)

	if m.version != "" {
		gap := width - 4 - lipgloss.Width(content) - lipgloss.Width(m.version)
		if gap > 0 {
			content = content + strings.Repeat(" ", gap) + m.version
		}
	}
	return footerStyle.Width(width - 2).Render(content)
}

// cell truncates and left-pads a value into a fixed column.
func cell(s string, w int) string {
	s = truncate.StringWithTail(s, uint(w-1), "…")
	return fmt.Sprintf("%-*s", w, s)
}
